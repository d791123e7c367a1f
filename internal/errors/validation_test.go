package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/tactics-grid/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("name", "is required")
	ve.AddFieldError("gridType", "is invalid")
	ve.AddFieldErrorf("width", "must be at least %d", 1)

	s.Assert().True(ve.HasErrors())
	s.Assert().Contains(ve.Error(), "name: is required")
	s.Assert().Contains(ve.Error(), "gridType: is invalid")
	s.Assert().Contains(ve.Error(), "width: must be at least 1")

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationErrorOrdersFields() {
	ve := errors.NewValidationError()
	ve.AddFieldError("width", "must be positive")
	ve.AddFieldError("tiles[1]", "has 3 columns, expected 4")
	ve.AddFieldError("height", "must be positive")

	s.Assert().Equal(
		"validation failed: height: must be positive; tiles[1]: has 3 columns, expected 4; width: must be positive",
		ve.Error(),
	)
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("tiles[0]", "must have %d columns", 10).
		RequiredField("gridType").
		InvalidField("tiles[0][0].terrain.type", "unknown terrain type")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *ValidationTestSuite) TestValidationBuilderCount() {
	vb := errors.NewValidationBuilder()
	s.Assert().Equal(0, vb.Count())

	vb.Field("width", "must be positive").
		Field("width", "must be at most 256").
		RequiredField("gridType")

	s.Assert().Equal(3, vb.Count())
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidatePositive() {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("width", 0, vb)
	errors.ValidatePositive("height", 8, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	fields := errors.GetFieldErrors(err)
	s.Assert().Equal([]string{"must be positive"}, fields["width"])
	s.Assert().NotContains(fields, "height")
}

func (s *ValidationTestSuite) TestValidateNonNegative() {
	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("budget", -1, vb)
	errors.ValidateNonNegative("min_range", 0, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	fields := errors.GetFieldErrors(err)
	s.Assert().Equal([]string{"must not be negative"}, fields["budget"])
	s.Assert().NotContains(fields, "min_range")
}

func (s *ValidationTestSuite) TestValidateRange() {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("width", 300, 1, 256, vb)
	errors.ValidateRange("height", 12, 1, 256, vb)
	errors.ValidateRange("movement", -1, 0, 99, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["width"][0], "must be between 1 and 256")
	s.Assert().Contains(validationErrors["movement"][0], "must be between 0 and 99")
	s.Assert().NotContains(validationErrors, "height")
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allowed := []string{"square", "hex"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("grid_type", "triangle", allowed, vb)
	errors.ValidateEnum("other_grid_type", "hex", allowed, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	meta := errors.GetMeta(err)
	validationErrors := meta["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["grid_type"][0], "must be one of: square, hex")
	s.Assert().NotContains(validationErrors, "other_grid_type")
}

func (s *ValidationTestSuite) TestGetFieldErrorsWithoutValidation() {
	s.Assert().Nil(errors.GetFieldErrors(nil))
	s.Assert().Nil(errors.GetFieldErrors(errors.NotFound("map not found")))
}
