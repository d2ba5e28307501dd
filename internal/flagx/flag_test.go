package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	t.Parallel()

	allowed := []string{"-c", "-config", "-a"}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate value survives, foreign flag dropped",
			args: []string{"-c", "conf.json", "-users", "u.json"},
			want: []string{"-c", "conf.json"},
		},
		{
			name: "equals form survives whole",
			args: []string{"-config=alt.json", "-users", "u.json"},
			want: []string{"-config=alt.json"},
		},
		{
			name: "order preserved across multiple allowed flags",
			args: []string{"-a", ":9000", "-x", "1", "-c", "conf.json"},
			want: []string{"-a", ":9000", "-c", "conf.json"},
		},
		{
			name: "only foreign flags yields empty",
			args: []string{"-users", "u.json", "-admin"},
			want: []string{},
		},
		{
			name: "trailing flag without value kept",
			args: []string{"-c"},
			want: []string{"-c"},
		},
		{
			name: "next dash token is not a value",
			args: []string{"-c", "-a", ":9000"},
			want: []string{"-c", "-a", ":9000"},
		},
		{
			name: "equals form with dash value",
			args: []string{"-config=--odd.json"},
			want: []string{"-config=--odd.json"},
		},
		{
			name: "repeated flag kept twice",
			args: []string{"-c", "one.json", "-c", "two.json"},
			want: []string{"-c", "one.json", "-c", "two.json"},
		},
		{
			name: "no args",
			args: []string{},
			want: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FilterArgs(tt.args, allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short flag", func(t *testing.T) {
		os.Args = []string{"bin", "-c", "/etc/app/conf.json"}
		assert.Equal(t, "/etc/app/conf.json", JsonConfigFlags())
	})

	t.Run("long flag", func(t *testing.T) {
		os.Args = []string{"bin", "-config", "/etc/app/conf.json"}
		assert.Equal(t, "/etc/app/conf.json", JsonConfigFlags())
	})

	t.Run("foreign flags ignored", func(t *testing.T) {
		os.Args = []string{"bin", "-users", "u.json", "-admin"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		os.Args = []string{"bin", "-c", "/first.json", "-config", "/second.json"}
		assert.Equal(t, "/second.json", JsonConfigFlags())
	})
}
