package tagged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/frontier/internal/tagged"
)

type shape interface{ area() int }

type square struct{ Side int }
type rect struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}
type dot struct{}
type named struct{ Name string }

func (s square) area() int { return s.Side * s.Side }
func (r rect) area() int   { return r.W * r.H }
func (dot) area() int      { return 0 }
func (named) area() int    { return 1 }

var shapes = tagged.Registry[shape]{
	"Square": tagged.Int(func(n int) shape { return square{n} }),
	"Rect":   tagged.Fields[shape, rect](),
	"Dot":    tagged.Unit[shape](dot{}),
	"Named":  tagged.String(func(s string) shape { return named{s} }),
}

func decode(t *testing.T, src string) ([]shape, error) {
	t.Helper()
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &node))
	return shapes.DecodeSeq(node.Content[0])
}

func TestDecodeSeq_AllForms(t *testing.T) {
	got, err := decode(t, "- Square: 3\n- Rect: {w: 2, h: 5}\n- Dot\n- Named: blob\n- Dot: ~\n")
	require.NoError(t, err)
	assert.Equal(t, []shape{square{3}, rect{2, 5}, dot{}, named{"blob"}, dot{}}, got)
}

func TestDecodeSeq_JSON(t *testing.T) {
	got, err := decode(t, `[{"Square": 2}, "Dot"]`)
	require.NoError(t, err)
	assert.Equal(t, []shape{square{2}, dot{}}, got)
}

func TestDecode_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown":      "- Circle: 2\n",
		"two keys":     "- {Square: 2, Dot: ~}\n",
		"bad amount":   "- Square: big\n",
		"unit payload": "- Dot: 3\n",
		"fields":       "- Rect: 4\n",
		"not sequence": "Square: 2\n",
		"empty string": "- Named: ~\n",
	}
	for name, src := range cases {
		_, err := decode(t, src)
		assert.Error(t, err, name)
	}
}
