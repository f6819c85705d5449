package usecase

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ardenpalme/app/internal/core/domain"
)

// validate checks the boundary contract of every write input. Field names
// in errors follow the JSON spelling.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	v.RegisterStructValidation(campaignDates, domain.CampaignForm{})
	return v
}

// campaignDates rejects a campaign that ends before it starts.
func campaignDates(sl validator.StructLevel) {
	form := sl.Current().Interface().(domain.CampaignForm)
	if form.StartDate.IsZero() || form.EndDate.IsZero() {
		return
	}
	if form.EndDate.Before(form.StartDate) {
		sl.ReportError(form.EndDate, "endDate", "EndDate", "enddate_after_startdate", "startDate")
	}
}

// validateStruct runs the validator on s and converts its findings into a
// *domain.ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return &domain.ValidationError{Fields: fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.Slice {
			return "must have at most " + fe.Param() + " items"
		}
		return "must be at most " + fe.Param() + " characters"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "enddate_after_startdate":
		return "must not be before " + fe.Param()
	default:
		return "is invalid"
	}
}
