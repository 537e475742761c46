package apierrors_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"gudang/pkg/apierrors"
)

func TestValidationFailed(t *testing.T) {
	before := time.Now()
	resp := apierrors.ValidationFailed(map[string]string{
		"name": "the name field is required",
		"sku":  "must be at least 3 characters long",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Validation Failed", resp.Error)
	assert.Equal(t, "The submitted data is not valid", resp.Message)
	assert.Len(t, resp.Errors, 2)
	assert.False(t, resp.Timestamp.Before(before))
}

func TestMalformedBody_Hints(t *testing.T) {
	// The hint is inferred from the parse failure text, like the price hint
	// triggered by a decimal that could not be parsed.
	var d decimal.Decimal
	decimalErr := json.Unmarshal([]byte(`"not-a-number"`), &d)
	assert.Error(t, decimalErr)

	resp := apierrors.MalformedBody(decimalErr)
	assert.Equal(t, http.StatusBadRequest, resp.Status)
	assert.Equal(t, "Bad Request", resp.Error)
	assert.Contains(t, resp.Message, "price format")
	assert.Equal(t, "Check the format of the submitted data", resp.Details)

	var target struct {
		Quantity int `json:"quantity"`
	}
	typeErr := json.Unmarshal([]byte(`{"quantity":"ten"}`), &target)
	assert.Error(t, typeErr)

	resp = apierrors.MalformedBody(typeErr)
	assert.Equal(t, "One or more fields have an incorrect format", resp.Message)

	syntaxErr := json.Unmarshal([]byte(`{not json`), &target)
	assert.Error(t, syntaxErr)

	resp = apierrors.MalformedBody(syntaxErr)
	assert.Equal(t, "The JSON payload is not well formed", resp.Message)

	// Unrecognized failures fall back to the generic message.
	resp = apierrors.MalformedBody(errors.New("something odd"))
	assert.Equal(t, "Invalid data format", resp.Message)
}
