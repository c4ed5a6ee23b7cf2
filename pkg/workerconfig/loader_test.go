package workerconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/edgectl/edgectl/pkg/bindings"
	"github.com/edgectl/edgectl/pkg/workerconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "worker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoader_MissingFile(t *testing.T) {
	t.Parallel()

	loader := workerconfig.NewLoader(filepath.Join(t.TempDir(), "worker.yaml"))

	_, err := loader.Load()

	require.Error(t, err)
}

func TestLoader_DecodesBindings(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
name: checkout
tail_consumers:
  - service: log-sink
durable_objects:
  - name: CART
    class_name: Cart
    script_name: cart-service
kv_namespaces:
  - binding: SESSIONS
    id: local
services:
  - binding: AUTH
    service: auth-service
    entrypoint: AdminEntrypoint
ai:
  binding: AI
vars:
  api_url: https://api.example.com
`)

	config, err := workerconfig.NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "checkout", config.Name)
	assert.Equal(t, []bindings.TailConsumer{{Service: "log-sink"}}, config.TailConsumers)

	require.Len(t, config.Bindings.DurableObjects, 1)
	assert.Equal(t, bindings.DurableObjectBinding{
		Name:       "CART",
		ClassName:  "Cart",
		ScriptName: "cart-service",
	}, config.Bindings.DurableObjects[0])

	require.Len(t, config.Bindings.KVNamespaces, 1)
	assert.Equal(t, "local", config.Bindings.KVNamespaces[0].ID)

	require.Len(t, config.Bindings.Services, 1)
	assert.Equal(t, "AdminEntrypoint", config.Bindings.Services[0].Entrypoint)

	require.NotNil(t, config.Bindings.AI)
	assert.Equal(t, "AI", config.Bindings.AI.Binding)

	assert.Equal(t, "https://api.example.com", config.Bindings.Vars["api_url"])
}

func TestLoader_LowercasesMapKeys(t *testing.T) {
	t.Parallel()

	// Viper lowercases keys on read; uppercase var names in the file come out
	// lowercased and render that way downstream.
	path := writeConfig(t, `
name: checkout
vars:
  API_URL: https://api.example.com
`)

	config, err := workerconfig.NewLoader(path).Load()

	require.NoError(t, err)
	assert.NotContains(t, config.Bindings.Vars, "API_URL")
	assert.Equal(t, "https://api.example.com", config.Bindings.Vars["api_url"])
}

func TestLoader_ExpandsVarPlaceholders(t *testing.T) {
	t.Setenv("EDGECTL_TEST_STAGE", "staging")

	path := writeConfig(t, `
name: checkout
vars:
  stage: ${EDGECTL_TEST_STAGE}
  region: ${EDGECTL_TEST_REGION:-eu-west}
`)

	config, err := workerconfig.NewLoader(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "staging", config.Bindings.Vars["stage"])
	assert.Equal(t, "eu-west", config.Bindings.Vars["region"])
}

func TestLoader_Path(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "name: checkout\n")
	loader := workerconfig.NewLoader(path)

	_, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, path, loader.Path())
}
