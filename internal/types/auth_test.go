package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUserRequestValidate(t *testing.T) {
	valid := CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "longenough"}
	assert.NoError(t, valid.Validate())

	badEmail := CreateUserRequest{Name: "Jane", Email: "not-an-email", Password: "longenough"}
	assert.Error(t, badEmail.Validate())

	shortPassword := CreateUserRequest{Name: "Jane", Email: "jane@example.com", Password: "short"}
	assert.Error(t, shortPassword.Validate())
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "jane@example.com", Password: "anything"}
	assert.NoError(t, valid.Validate())

	missing := LoginRequest{Email: "jane@example.com"}
	assert.Error(t, missing.Validate())
}

func TestAnalyzeRequestValidate(t *testing.T) {
	valid := AnalyzeRequest{ResumeText: "resume body"}
	assert.NoError(t, valid.Validate())

	withURL := AnalyzeRequest{ResumeText: "resume body", JobURL: "https://example.com/job"}
	assert.NoError(t, withURL.Validate())

	badURL := AnalyzeRequest{ResumeText: "resume body", JobURL: "::not-a-url"}
	assert.Error(t, badURL.Validate())

	empty := AnalyzeRequest{}
	assert.Error(t, empty.Validate())
}
