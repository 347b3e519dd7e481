package transform_test

import (
	"strings"
	"testing"

	"github.com/Gobd/fluentvalidation/transform"
	"github.com/stretchr/testify/assert"
)

type inner struct {
	Value string
}

type outer struct {
	Name     string
	Ptr      *string
	Inner    inner
	InnerPtr *inner
	List     []string
	Items    []inner
	Pairs    [2]string
	Labels   map[string]string
	ByKey    map[string]inner
	Any      any
	hidden   string
}

func TestTrimSpace(t *testing.T) {
	p := "  ptr  "
	o := &outer{
		Name:     "  name ",
		Ptr:      &p,
		Inner:    inner{Value: " in "},
		InnerPtr: &inner{Value: " in ptr "},
		List:     []string{" a ", "b "},
		Items:    []inner{{Value: " x "}},
		Pairs:    [2]string{" l ", " r "},
		Labels:   map[string]string{"k": " v "},
		ByKey:    map[string]inner{"k": {Value: " mv "}},
		Any:      " any ",
		hidden:   " hidden ",
	}

	transform.TrimSpace(o)

	assert.Equal(t, "name", o.Name)
	assert.Equal(t, "ptr", *o.Ptr)
	assert.Equal(t, "in", o.Inner.Value)
	assert.Equal(t, "in ptr", o.InnerPtr.Value)
	assert.Equal(t, []string{"a", "b"}, o.List)
	assert.Equal(t, "x", o.Items[0].Value)
	assert.Equal(t, [2]string{"l", "r"}, o.Pairs)
	assert.Equal(t, "v", o.Labels["k"])
	assert.Equal(t, "mv", o.ByKey["k"].Value)
	assert.Equal(t, " any ", o.Any)
	assert.Equal(t, " hidden ", o.hidden)
}

func TestStrings_NilAndNonPointer(t *testing.T) {
	assert.NotPanics(t, func() { transform.TrimSpace((*outer)(nil)) })

	o := outer{Name: " name "}
	transform.TrimSpace(o)
	assert.Equal(t, " name ", o.Name)
}

func TestChain(t *testing.T) {
	o := &outer{Name: "  MiXeD "}
	transform.Chain(o, transform.TrimSpace, transform.ToLower)
	assert.Equal(t, "mixed", o.Name)

	transform.Strings(o, strings.ToUpper)
	assert.Equal(t, "MIXED", o.Name)
}
