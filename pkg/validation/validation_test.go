package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/impact-gym-api/pkg/errors"
)

type samplePayload struct {
	Name      string `json:"name" validate:"required"`
	CPF       string `json:"cpf" validate:"required,cpf"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" validate:"omitempty,oneof=paid pending overdue"`
}

func TestStructReportsJSONFieldNames(t *testing.T) {
	v := New()
	err := Struct(v, samplePayload{CPF: "123", BirthDate: "15/01/2024", Status: "late"}, "invalid student payload")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)

	fields := map[string]string{}
	for _, f := range appErr.Fields {
		fields[f.Field] = f.Message
	}
	assert.Equal(t, "name is required", fields["name"])
	assert.Contains(t, fields["cpf"], "CPF")
	assert.Contains(t, fields["birth_date"], "YYYY-MM-DD")
	assert.Equal(t, "status must be one of: paid, pending, overdue", fields["status"])
}

func TestStructValid(t *testing.T) {
	assert.NoError(t, Struct(New(), samplePayload{Name: "Ana", CPF: "123.456.789-09", BirthDate: "1990-05-01"}, "x"))
}

func TestIsCPF(t *testing.T) {
	assert.True(t, IsCPF("123.456.789-09"))
	assert.True(t, IsCPF("12345678909"))
	assert.False(t, IsCPF("123.456.789-0"))
	assert.False(t, IsCPF("abc.def.ghi-jk"))
}

type nestedPayload struct {
	Exercises []struct {
		Name string `json:"name" validate:"required"`
	} `json:"exercises" validate:"dive"`
	EmbeddedSnapshot
}

type EmbeddedSnapshot struct {
	Weight *float64 `json:"weight" validate:"omitempty,gt=0"`
}

func TestFieldPathsFlattenEmbeddedAndKeepSlices(t *testing.T) {
	negative := -1.0
	payload := nestedPayload{Exercises: make([]struct {
		Name string `json:"name" validate:"required"`
	}, 1)}
	payload.Weight = &negative

	err := Struct(New(), payload, "invalid")
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	fields := map[string]bool{}
	for _, f := range appErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["exercises[0].name"])
	assert.True(t, fields["weight"])
}
