package observer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSupport_DefaultsToStdout(t *testing.T) {
	s := NewSupport(nil)
	assert.NotNil(t, s.out)
}

func TestSupport_Notify(t *testing.T) {
	var buf bytes.Buffer
	s := NewSupport(&buf)
	e := NewEquipment("Dell XPS", "Notebook", "available")

	s.Notify(e)
	e.ChangeStatus("in repair")
	s.Notify(e)

	assert.Equal(t,
		"Support notified: equipment \"Dell XPS\" changed status to \"available\"\n"+
			"Support notified: equipment \"Dell XPS\" changed status to \"in repair\"\n",
		buf.String())
}

func TestFormatNotification(t *testing.T) {
	assert.Equal(t, `Support notified: equipment "X" changed status to "Y"`, FormatNotification("X", "Y"))
}
