package loader_test

import (
	"testing"

	"hvac-matcher/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loaded  bool
	err     error
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.err
}

func TestManagerLoadsEnabledFeatures(t *testing.T) {
	mgr := loader.NewManager()

	on := &fakeFeature{name: "decode", enabled: true}
	off := &fakeFeature{name: "search", enabled: false}
	mgr.Register(on)
	mgr.Register(off)

	err := mgr.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.True(t, on.loaded)
	assert.False(t, off.loaded, "disabled features are skipped")
}

func TestManagerStopsOnFirstFailure(t *testing.T) {
	mgr := loader.NewManager()

	failing := &fakeFeature{name: "build", enabled: true, err: assert.AnError}
	after := &fakeFeature{name: "validate", enabled: true}
	mgr.Register(failing)
	mgr.Register(after)

	err := mgr.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "build")
	assert.False(t, after.loaded)
}

func TestManagerFeaturesOrder(t *testing.T) {
	mgr := loader.NewManager()
	mgr.Register(&fakeFeature{name: "a"})
	mgr.Register(&fakeFeature{name: "b"})

	features := mgr.Features()
	assert.Len(t, features, 2)
	assert.Equal(t, "a", features[0].Name())
	assert.Equal(t, "b", features[1].Name())
}
