package main

// @title           Brewlog API
// @version         1.0
// @description     Coffee inventory, tasting journal and brewing log
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token
func main() {
	Execute()
}
