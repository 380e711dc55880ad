package analysis

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFieldsPayload(t *testing.T) {
	schema := BuildFieldsSchema()

	good := []byte(`{"model_name":"C31N1815","voltage":"11.4V"}`)
	require.NoError(t, ValidateJSONAgainstSchema(schema, good))

	missingRequired := []byte(`{"voltage":"11.4V"}`)
	require.Error(t, ValidateJSONAgainstSchema(schema, missingRequired))

	wrongType := []byte(`{"model_name":42}`)
	require.Error(t, ValidateJSONAgainstSchema(schema, wrongType))

	notJSON := []byte(`{`)
	require.Error(t, ValidateJSONAgainstSchema(schema, notJSON))
}

func TestRecoverableClassification(t *testing.T) {
	rec := &RecoverableError{Reason: "engine timeout", Err: errors.New("503")}
	require.True(t, Recoverable(rec))
	require.True(t, Recoverable(fmt.Errorf("analyze label-01.pdf: %w", rec)))
	require.Contains(t, rec.Error(), "engine timeout")

	fatal := &FatalError{Reason: "document rejected"}
	require.False(t, Recoverable(fatal))
	require.False(t, Recoverable(errors.New("plain")))
	require.False(t, Recoverable(nil))
}
