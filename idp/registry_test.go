package idp

import (
	"sync"
	"testing"

	"github.com/kbukum/idkit/errors"
)

func testDescriptor(id string) *Descriptor {
	return &Descriptor{
		ID:               id,
		Protocol:         ProtocolOIDC,
		ClientAuthMethod: AuthMethodNone,
		Normalize:        MappedNormalizer(id, ClaimMapping{}),
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register(testDescriptor("keyp"))

	d, ok := reg.Get("keyp")
	if !ok || d.ID != "keyp" {
		t.Errorf("Get(keyp) = %v, %v", d, ok)
	}
	if _, ok := reg.Get("missing"); ok {
		t.Error("expected miss for unregistered id")
	}
}

func TestRegistry_FirstRegisteredIsDefault(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register(testDescriptor("keyp"))
	reg.Register(testDescriptor("google"))

	d, ok := reg.Default()
	if !ok || d.ID != "keyp" {
		t.Errorf("Default() = %v, %v, want keyp", d, ok)
	}

	if err := reg.SetDefault("google"); err != nil {
		t.Fatal(err)
	}
	d, _ = reg.Default()
	if d.ID != "google" {
		t.Errorf("Default() after SetDefault = %s", d.ID)
	}

	if err := reg.SetDefault("missing"); err == nil {
		t.Error("expected error for unknown default")
	}
}

func TestRegistry_Names_Sorted(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register(testDescriptor("google"))
	reg.Register(testDescriptor("keyp"))
	reg.Register(testDescriptor("auth0"))

	names := reg.Names()
	want := []string{"auth0", "google", "keyp"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestRegistry_Build_FailureIsIsolated(t *testing.T) {
	reg := NewRegistry(nil)

	failing := func(cfg UserConfig) (*Descriptor, error) {
		return nil, errors.MissingField("client_id")
	}
	working := func(cfg UserConfig) (*Descriptor, error) {
		return testDescriptor("keyp"), nil
	}

	if err := reg.Build(failing, UserConfig{}); err == nil {
		t.Fatal("expected build error")
	}
	if err := reg.Build(working, UserConfig{ClientID: "abc"}); err != nil {
		t.Fatalf("working build failed: %v", err)
	}

	if len(reg.Names()) != 1 {
		t.Errorf("expected only the working provider registered, got %v", reg.Names())
	}
	if _, ok := reg.Get("keyp"); !ok {
		t.Error("working provider should be usable after another failed")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewRegistry(nil)
	reg.Register(testDescriptor("keyp"))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register(testDescriptor("google"))
		}()
		go func() {
			defer wg.Done()
			_, _ = reg.Get("keyp")
			_ = reg.Names()
		}()
	}
	wg.Wait()

	if _, ok := reg.Get("keyp"); !ok {
		t.Error("keyp lost after concurrent access")
	}
}

func TestRegistry_MustGet_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered id")
		}
	}()
	NewRegistry(nil).MustGet("missing")
}
