package typeenv

import (
	"strings"

	"gopkg.in/yaml.v2"
)

func (s Signature) String() string {
	var params []string
	for _, p := range s.Params {
		params = append(params, p.String())
	}
	return "fn(" + strings.Join(params, ", ") + ") -> " + s.Returns.String()
}

// TypeInfo is the serialisable summary of an Env after a compilation.
type TypeInfo struct {
	Functions map[string]string `yaml:"functions"`
	Variables map[string]string `yaml:"variables"`
}

func (e *Env) TypeInfo() TypeInfo {
	info := TypeInfo{
		Functions: make(map[string]string, len(e.funcs)),
		Variables: make(map[string]string, len(e.vars)),
	}
	for name, sig := range e.funcs {
		info.Functions[name] = sig.String()
	}
	for name, t := range e.vars {
		info.Variables[name] = t.String()
	}
	return info
}

func (t TypeInfo) Marshal() ([]byte, error) {
	return yaml.Marshal(t)
}
