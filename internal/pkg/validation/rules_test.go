package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidRegNumber(t *testing.T) {
	assert.True(t, IsValidRegNumber("20211234567"))
	assert.True(t, IsValidRegNumber("BME/2021/043"))
	assert.True(t, IsValidRegNumber("ENG-2020-001"))

	assert.False(t, IsValidRegNumber(""))
	assert.False(t, IsValidRegNumber("ab"))
	assert.False(t, IsValidRegNumber("/2021/043"))
	assert.False(t, IsValidRegNumber("2021 1234"))
	assert.False(t, IsValidRegNumber(strings.Repeat("9", 60)))
}

// The 50-char cap must match the students.reg_number column width, rejecting
// overlong input here instead of surfacing a truncation error from the insert.
func TestIsValidRegNumberLengthBoundary(t *testing.T) {
	assert.True(t, IsValidRegNumber(strings.Repeat("9", 50)))
	assert.False(t, IsValidRegNumber(strings.Repeat("9", 51)))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@futo.edu.ng"))
	assert.True(t, IsValidEmail("first.last+tag@example.com"))

	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidSession(t *testing.T) {
	assert.True(t, IsValidSession("2023/2024"))
	assert.True(t, IsValidSession("1999/2000"))

	assert.False(t, IsValidSession("2023-2024"))
	assert.False(t, IsValidSession("23/24"))
	assert.False(t, IsValidSession("2023/24"))
	assert.False(t, IsValidSession(""))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Ada Obi"))
	assert.False(t, IsValidName("A"))
	assert.False(t, IsValidName(strings.Repeat("x", NameMaxLength+1)))
}
