package handlers

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/h4ks-com/brewlog/internal/models"
)

var (
	registerOnce sync.Once
	clockRe      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// RegisterValidators adds the domain rules to gin's validator and makes
// field errors report json names. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		v.RegisterValidation("roastlevel", validRoastLevel)
		v.RegisterValidation("currency", validCurrency)
		v.RegisterValidation("isodate", validISODate)
		v.RegisterValidation("clock", validClock)
	})
}

func jsonName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

func validRoastLevel(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, level := range models.RoastLevels {
		if string(level) == value {
			return true
		}
	}
	return false
}

func validCurrency(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, c := range models.Currencies {
		if string(c) == value {
			return true
		}
	}
	return false
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validClock(fl validator.FieldLevel) bool {
	return clockRe.MatchString(fl.Field().String())
}
