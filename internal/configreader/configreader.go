package configreader

import (
	"encoding"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"fknsrs.biz/p/videoregistry/internal/stringutil"
)

// Read fills out, a pointer to a struct, from a config file, then
// command-line flags, then environment variables; later sources win. The
// file is named by the "config" parameter from any of those sources or the
// struct itself.
func Read(program string, arguments, environment []string, out interface{}) error {
	if _, _, err := getValueAndType(out); err != nil {
		return fmt.Errorf("configreader.Read: %w", err)
	}

	if configPath, ok := getFromArgumentsOrEnvironmentOrObject(arguments, environment, out, "config"); ok && configPath != "" {
		if err := readFile(configPath, out); err != nil {
			return fmt.Errorf("configreader.Read: %w", err)
		}
	}

	if err := readArguments(program, arguments, out, os.Stderr); err != nil {
		return fmt.Errorf("configreader.Read: could not read command-line flags: %w", err)
	}

	if err := readEnvironment(environment, out); err != nil {
		return fmt.Errorf("configreader.Read: could not read environment variables: %w", err)
	}

	return nil
}

func getValueAndType(v interface{}) (reflect.Value, reflect.Type, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return reflect.Value{}, nil, fmt.Errorf("configreader.getValueAndType: value must be a non-nil pointer; was instead %T", v)
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("configreader.getValueAndType: value must be a pointer to a struct; was instead %T", v)
	}

	return rv, rv.Type(), nil
}

type encodingText interface {
	encoding.TextMarshaler
	encoding.TextUnmarshaler
}

var (
	stringType       = reflect.TypeOf("")
	boolType         = reflect.TypeOf(true)
	intType          = reflect.TypeOf(int(0))
	encodingTextType = reflect.TypeOf((*encodingText)(nil)).Elem()
)

func isText(t reflect.Type) bool {
	return reflect.PointerTo(t).Implements(encodingTextType)
}

func getFromArgumentsOrEnvironmentOrObject(arguments, environment []string, obj interface{}, name string) (string, bool) {
	if s, ok := getFromArguments(arguments, name); ok {
		return s, ok
	}

	if s, ok := getFromEnvironment(environment, name); ok {
		return s, ok
	}

	return getFromObject(obj, name)
}

func getFromArguments(arguments []string, name string) (string, bool) {
	for _, prefix := range []string{"-" + name, "--" + name} {
		for i := 0; i < len(arguments); i++ {
			if arguments[i] == prefix && i+1 < len(arguments) {
				return arguments[i+1], true
			} else if strings.HasPrefix(arguments[i], prefix+"=") {
				return strings.TrimPrefix(arguments[i], prefix+"="), true
			}
		}
	}

	return "", false
}

// environment variable names are matched without regard to case
func getFromEnvironment(environment []string, name string) (string, bool) {
	prefix := strings.ToLower(name + "=")

	for _, e := range environment {
		if strings.HasPrefix(strings.ToLower(e), prefix) {
			return e[len(prefix):], true
		}
	}

	return "", false
}

func getFromObject(obj interface{}, name string) (string, bool) {
	val, typ, err := getValueAndType(obj)
	if err != nil {
		return "", false
	}

	for i := 0; i < val.NumField(); i++ {
		vf := val.Field(i)
		tf := typ.Field(i)

		if parameterName, _, ok := getNameAndHelpForField(tf); !ok || parameterName != name {
			continue
		}

		if tf.Type == stringType {
			return vf.String(), true
		}
	}

	return "", false
}

func readFile(filePath string, out interface{}) error {
	fd, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("readFile: could not open config file: %w", err)
	}
	defer fd.Close()

	switch filepath.Ext(filePath) {
	case ".yaml", ".yml":
		if err := yaml.NewDecoder(fd).Decode(out); err != nil && err != io.EOF {
			return fmt.Errorf("readFile: could not read %q as yaml: %w", filePath, err)
		}
	case ".toml":
		if err := toml.NewDecoder(fd).Decode(out); err != nil {
			return fmt.Errorf("readFile: could not read %q as toml: %w", filePath, err)
		}
	default:
		return fmt.Errorf("readFile: could not determine file type for %q", filePath)
	}

	return nil
}

func readArguments(program string, arguments []string, out interface{}, usage io.Writer) error {
	val, typ, err := getValueAndType(out)
	if err != nil {
		return fmt.Errorf("configreader.readArguments: %w", err)
	}

	flagSet := flag.NewFlagSet(program, flag.ContinueOnError)
	flagSet.SetOutput(usage)
	flagSet.Usage = func() {
		fmt.Fprintf(usage, "Usage: %s [OPTIONS]\n", program)
		flagSet.PrintDefaults()
	}

	for i := 0; i < val.NumField(); i++ {
		vf := val.Field(i)
		tf := typ.Field(i)

		name, help, ok := getNameAndHelpForField(tf)
		if !ok {
			continue
		}

		switch {
		case tf.Type == stringType:
			flagSet.StringVar(vf.Addr().Interface().(*string), name, vf.String(), help)
		case tf.Type == boolType:
			flagSet.BoolVar(vf.Addr().Interface().(*bool), name, vf.Bool(), help)
		case tf.Type == intType:
			flagSet.IntVar(vf.Addr().Interface().(*int), name, int(vf.Int()), help)
		case isText(tf.Type):
			flagSet.TextVar(vf.Addr().Interface().(encoding.TextUnmarshaler), name, vf.Addr().Interface().(encoding.TextMarshaler), help)
		default:
			return fmt.Errorf("configreader.readArguments: could not define flag for parameter %s (%s) with type %s", tf.Name, name, tf.Type)
		}
	}

	return flagSet.Parse(arguments)
}

func readEnvironment(environment []string, out interface{}) error {
	val, typ, err := getValueAndType(out)
	if err != nil {
		return fmt.Errorf("configreader.readEnvironment: %w", err)
	}

	for i := 0; i < typ.NumField(); i++ {
		vf := val.Field(i)
		tf := typ.Field(i)

		name, _, ok := getNameAndHelpForField(tf)
		if !ok {
			continue
		}

		ev, ok := getFromEnvironment(environment, name)
		if !ok {
			continue
		}

		switch {
		case tf.Type == stringType:
			vf.SetString(ev)
		case tf.Type == boolType:
			switch {
			case stringutil.LooksTrue(ev):
				vf.SetBool(true)
			case stringutil.LooksFalse(ev):
				vf.SetBool(false)
			default:
				return fmt.Errorf("configreader.readEnvironment: could not parse parameter %s (%s) as boolean: %q", tf.Name, name, ev)
			}
		case tf.Type == intType:
			n, err := strconv.Atoi(strings.TrimSpace(ev))
			if err != nil {
				return fmt.Errorf("configreader.readEnvironment: could not parse parameter %s (%s) as integer: %w", tf.Name, name, err)
			}
			vf.SetInt(int64(n))
		case isText(tf.Type):
			if err := vf.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(ev)); err != nil {
				return fmt.Errorf("configreader.readEnvironment: could not unmarshal parameter %s (%s): %w", tf.Name, name, err)
			}
		default:
			return fmt.Errorf("configreader.readEnvironment: could not read parameter %s (%s) of type %s", tf.Name, name, tf.Type)
		}
	}

	return nil
}

func getNameAndHelpForField(f reflect.StructField) (string, string, bool) {
	if !f.IsExported() {
		return "", "", false
	}

	name := f.Tag.Get("name")
	if name == "" {
		name = stringutil.PascalToSnake(f.Name)
	}

	if name == "-" {
		return "", "", false
	}

	return name, f.Tag.Get("help"), true
}
