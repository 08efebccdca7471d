package yamlinc

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubstituteFromEnvironment(t *testing.T) {
	t.Setenv("YAMLINC_SUB_FOO", "bar")

	result := substituteVariables("cfg/${YAMLINC_SUB_FOO}.yaml", discardLogger())
	assert.Equal(t, "cfg/bar.yaml", result)
}

func TestSubstituteFromContext(t *testing.T) {
	t.Setenv("config", "db:\n  host: localhost\n  port: 5432\n")

	assert.Equal(t, "localhost.yaml", substituteVariables("${db.host}.yaml", discardLogger()))
	assert.Equal(t, "5432.yaml", substituteVariables("${db.port}.yaml", discardLogger()))
}

func TestSubstituteEnvironmentWinsOverContext(t *testing.T) {
	t.Setenv("config", "host: from-context\n")
	t.Setenv("host", "from-env")

	result := substituteVariables("${host}.yaml", discardLogger())
	assert.Equal(t, "from-env.yaml", result)
}

func TestSubstituteUnresolvedBecomesEmptyWithDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	result := substituteVariables("cfg/${YAMLINC_SUB_MISSING}.yaml", logger)
	assert.Equal(t, "cfg/.yaml", result)
	assert.Contains(t, buf.String(), "YAMLINC_SUB_MISSING")
}

func TestSubstituteMalformedContextDegradesToEnvOnly(t *testing.T) {
	t.Setenv("config", "{not valid yaml")
	t.Setenv("YAMLINC_SUB_FOO", "bar")

	assert.Equal(t, "bar.yaml", substituteVariables("${YAMLINC_SUB_FOO}.yaml", discardLogger()))
	assert.Equal(t, ".yaml", substituteVariables("${db.host}.yaml", discardLogger()))
}

func TestSubstituteRepeatedToken(t *testing.T) {
	t.Setenv("YAMLINC_SUB_FOO", "x")

	result := substituteVariables("${YAMLINC_SUB_FOO}/${YAMLINC_SUB_FOO}.yaml", discardLogger())
	assert.Equal(t, "x/x.yaml", result)
}

func TestSubstituteNoPlaceholders(t *testing.T) {
	assert.Equal(t, "plain/path.yaml", substituteVariables("plain/path.yaml", discardLogger()))
}

func TestSubstituteDotPathThroughNonMapping(t *testing.T) {
	t.Setenv("config", "db: localhost\n")

	// db resolves to a scalar, so db.host cannot be walked further.
	result := substituteVariables("${db.host}.yaml", discardLogger())
	assert.Equal(t, ".yaml", result)
}
