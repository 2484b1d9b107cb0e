package config

// Store holds the current effective configuration across render
// invocations and supports scoped, self-restoring overrides.
type Store struct {
	current Config
}

// NewStore builds a store from the defaults overlaid with the given
// fragments.
func NewStore(fragments ...Fragment) (*Store, error) {
	merged, err := Merge(Default(), fragments...)
	if err != nil {
		return nil, err
	}
	return &Store{current: merged}, nil
}

// Current returns the effective configuration.
func (s *Store) Current() Config {
	return s.current
}

// Configure overlays the fragments onto the current configuration. On
// error the current configuration is left untouched.
func (s *Store) Configure(fragments ...Fragment) error {
	merged, err := Merge(s.current, fragments...)
	if err != nil {
		return err
	}
	s.current = merged
	return nil
}

// Scoped overlays the fragments, runs fn with the resulting configuration,
// and restores the prior configuration on every exit path, including when
// fn returns an error.
func (s *Store) Scoped(fn func(Config) error, fragments ...Fragment) error {
	prior := s.current
	defer func() { s.current = prior }()

	if err := s.Configure(fragments...); err != nil {
		return err
	}
	return fn(s.current)
}
