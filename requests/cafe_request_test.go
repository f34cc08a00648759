package requests

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCafeRequest_Validation(t *testing.T) {
	req := CafeRequest{
		Name:     "Bernie's Cafe",
		URL:      "https://bernies.example.com/",
		Address:  "3966 24th St",
		CityCode: "sf",
	}
	require.NoError(t, validate.Struct(req))
}

func TestCafeRequest_MissingRequiredFields(t *testing.T) {
	err := validate.Struct(CafeRequest{})
	require.Error(t, err)

	fieldErrors := GetCafeValidationErrors(err)
	require.Equal(t, "Name is required", fieldErrors["Name"])
	require.Equal(t, "URL is required", fieldErrors["URL"])
	require.Equal(t, "Address is required", fieldErrors["Address"])
	require.Equal(t, "City is required", fieldErrors["CityCode"])
}

func TestCafeRequest_BadURLs(t *testing.T) {
	req := CafeRequest{
		Name:     "Bernie's Cafe",
		URL:      "not-a-url",
		Address:  "3966 24th St",
		CityCode: "sf",
		ImageURL: "also-not-a-url",
	}
	err := validate.Struct(req)
	require.Error(t, err)

	fieldErrors := GetCafeValidationErrors(err)
	require.Equal(t, "Enter a valid URL", fieldErrors["URL"])
	require.Equal(t, "Enter a valid image URL", fieldErrors["ImageURL"])
}

func TestSignupRequest_Validation(t *testing.T) {
	err := validate.Struct(SignupRequest{
		Username:  "ab",
		Email:     "not-an-email",
		FirstName: "Amy",
		LastName:  "Lee",
		Password:  "short",
	})
	require.Error(t, err)

	fieldErrors := GetSignupValidationErrors(err)
	require.Equal(t, "Username must be at least 3 characters", fieldErrors["Username"])
	require.Equal(t, "Enter a valid email address", fieldErrors["Email"])
	require.Equal(t, "Password must be at least 6 characters", fieldErrors["Password"])
}
