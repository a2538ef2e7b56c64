package config

import (
	"reflect"

	"github.com/spf13/pflag"
	"gitlab.com/tozd/go/errors"
)

// RegisterFlags adds a flag for every field of cfg that carries a description
// tag. The koanf tag is the flag name, short the shorthand. flag:"once"
// rejects a string flag given more than once, flag:"count" makes an int a
// counter (-vv).
func RegisterFlags(fs *pflag.FlagSet, cfg Config) {
	v := reflect.ValueOf(cfg)
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		usage, ok := field.Tag.Lookup("description")
		if !ok {
			continue
		}
		name := field.Tag.Get("koanf")
		short := field.Tag.Get("short")
		mode := field.Tag.Get("flag")
		value := v.Field(i)

		switch field.Type.Kind() {
		case reflect.Bool:
			fs.BoolP(name, short, value.Bool(), usage)
		case reflect.Int:
			if mode == "count" {
				fs.CountP(name, short, usage)
				continue
			}
			fs.IntP(name, short, int(value.Int()), usage)
		case reflect.String:
			if mode == "once" {
				fs.VarP(&onceString{value: value.String()}, name, short, usage)
				continue
			}
			fs.StringP(name, short, value.String(), usage)
		case reflect.Slice:
			fs.StringSliceP(name, short, nil, usage)
		}
	}
}

var errRepeated = errors.Base("may only be specified once")

// onceString is a string flag that fails when it is set a second time.
type onceString struct {
	value string
	set   bool
}

func (s *onceString) String() string {
	return s.value
}

func (s *onceString) Set(v string) error {
	if s.set {
		return errRepeated
	}
	s.value = v
	s.set = true
	return nil
}

func (s *onceString) Type() string {
	return "string"
}
