package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	dotenv  sync.Once
	entries sync.Map // reflect.Type -> *entry
)

// Load fills v from the environment. A .env file in the working directory is
// read once, without overriding variables that are already set. Each config
// type is parsed once per process; later calls receive a copy of the cached
// value, or the cached error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	dotenv.Do(func() { _ = godotenv.Load() })

	key := reflect.TypeFor[T]()
	actual, _ := entries.LoadOrStore(key, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		var cfg T
		if err := env.Parse(&cfg); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = cfg
	})
	if e.err != nil {
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// MustLoad is Load for startup code: it panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}
