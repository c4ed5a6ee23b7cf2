package di_test

import (
	"errors"
	"testing"

	"github.com/edgectl/edgectl/pkg/devregistry"
	"github.com/edgectl/edgectl/pkg/di"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errHandler = errors.New("handler failed")

type fakeReader struct {
	snapshot devregistry.Snapshot
}

func (f *fakeReader) Read() (devregistry.Snapshot, error) {
	return f.snapshot, nil
}

func TestRuntime_InvokeLoadsModules(t *testing.T) {
	t.Parallel()

	type service struct{ name string }

	module := func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (*service, error) {
			return &service{name: "test"}, nil
		})

		return nil
	}

	runtime := di.New(module)

	var resolved *service

	err := runtime.Invoke(func(i di.Injector) error {
		var resolveErr error

		resolved, resolveErr = do.Invoke[*service](i)

		return resolveErr
	})

	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "test", resolved.name)
}

func TestRuntime_ModuleErrorSurfaces(t *testing.T) {
	t.Parallel()

	errModule := errors.New("module failed")
	runtime := di.New(func(di.Injector) error { return errModule })

	err := runtime.Invoke(func(di.Injector) error { return nil })

	require.ErrorIs(t, err, errModule)
}

func TestRunEWithRuntime(t *testing.T) {
	t.Parallel()

	runtime := di.New()

	handlerCalled := false
	runE := di.RunEWithRuntime(runtime, func(*cobra.Command, di.Injector) error {
		handlerCalled = true

		return nil
	})

	cmd := &cobra.Command{Use: "test"}
	err := runE(cmd, nil)

	require.NoError(t, err)
	assert.True(t, handlerCalled)
}

func TestRunEWithRuntime_HandlerError(t *testing.T) {
	t.Parallel()

	runtime := di.New()

	runE := di.RunEWithRuntime(runtime, func(*cobra.Command, di.Injector) error {
		return errHandler
	})

	err := runE(&cobra.Command{Use: "test"}, nil)

	require.ErrorIs(t, err, errHandler)
}

func TestResolveRegistryReader_DefaultProvider(t *testing.T) {
	t.Parallel()

	runtime := di.NewRuntime()

	err := runtime.Invoke(func(i di.Injector) error {
		reader, resolveErr := di.ResolveRegistryReader(i)
		if resolveErr != nil {
			return resolveErr
		}

		assert.NotNil(t, reader)

		return nil
	})

	require.NoError(t, err)
}

func TestResolveRegistryReader_Override(t *testing.T) {
	t.Parallel()

	fake := &fakeReader{snapshot: devregistry.Snapshot{"worker": {}}}
	runtime := di.New(func(i di.Injector) error {
		do.Provide(i, func(di.Injector) (devregistry.Reader, error) {
			return fake, nil
		})

		return nil
	})

	err := runtime.Invoke(func(i di.Injector) error {
		reader, resolveErr := di.ResolveRegistryReader(i)
		require.NoError(t, resolveErr)

		snapshot, readErr := reader.Read()
		require.NoError(t, readErr)
		assert.Len(t, snapshot, 1)

		return nil
	})

	require.NoError(t, err)
}
