// Package config provides sources of repository configuration properties,
// such as which identifiers to list during submission.
//
// Properties are read from a DSpace style key = value file (.cfg or
// .properties), or any other format viper understands, and may be overridden
// from the environment: a property a.b-c is overridden by SHOWID_A_B_C.
// ${key} references in .cfg files are expanded.
package config

import (
	"path/filepath"
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding properties
const EnvPrefix = "SHOWID"

// Properties is a showid.ConfigSource backed by a configuration file and the
// environment
type Properties struct {
	v *viper.Viper
}

// Load reads properties from the given file.  With an empty path, only the
// environment is consulted.
func Load(path string) (*Properties, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path == "" {
		return &Properties{v: v}, nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cfg", ".properties":
		p, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read configuration from %s", path)
		}
		if err := v.MergeConfigMap(nest(p)); err != nil {
			return nil, errors.Wrapf(err, "could not merge configuration from %s", path)
		}
	default:
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "could not read configuration from %s", path)
		}
	}

	return &Properties{v: v}, nil
}

// nest turns dotted property keys into the nested maps viper expects, so
// a.b = c becomes {a: {b: c}}.  A key that is also a prefix of other keys
// loses to them.
func nest(p *properties.Properties) map[string]any {
	root := map[string]any{}
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		path := strings.Split(key, ".")

		m := root
		for _, k := range path[:len(path)-1] {
			next, ok := m[k].(map[string]any)
			if !ok {
				next = map[string]any{}
				m[k] = next
			}
			m = next
		}
		if _, isMap := m[path[len(path)-1]].(map[string]any); !isMap {
			m[path[len(path)-1]] = value
		}
	}
	return root
}

// Property returns the value of the given property, and whether it is
// defined at all
func (p *Properties) Property(key string) (string, bool) {
	if p == nil || !p.v.IsSet(key) {
		return "", false
	}
	return p.v.GetString(key), true
}

// Map is a fixed set of properties
type Map map[string]string

// Property returns the value of the given property, and whether it is
// defined at all
func (m Map) Property(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
