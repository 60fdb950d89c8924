package factory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEquipment_Variants(t *testing.T) {
	tests := []struct {
		kind     string
		wantType Variant
		want     string
	}{
		{"Notebook", &Notebook{}, "Type: Notebook, Name: X, RAM: 8GB, Processor: i5"},
		{"Desktop", &Desktop{}, "Type: Desktop, Name: X, RAM: 8GB, Processor: i5"},
		{"Server", &Server{}, "Type: Server, Name: X, RAM: 8GB, Processor: i5"},
	}

	f := NewFactory()
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			v, err := f.CreateEquipment(tt.kind, "X", "8GB", "i5")
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, v)
			assert.Equal(t, Kind(tt.kind), v.Kind())
			assert.Equal(t, tt.want, v.Describe())
		})
	}
}

func TestCreateEquipment_PopulatesFields(t *testing.T) {
	v, err := NewFactory().CreateEquipment("Notebook", "Dell XPS", "16GB", "i7")
	require.NoError(t, err)

	nb, ok := v.(*Notebook)
	require.True(t, ok)
	assert.Equal(t, Notebook{Name: "Dell XPS", RAM: "16GB", Processor: "i7"}, *nb)
	assert.Equal(t, "Type: Notebook, Name: Dell XPS, RAM: 16GB, Processor: i7", nb.Describe())
}

func TestCreateEquipment_InvalidType(t *testing.T) {
	tests := []string{"Tablet", "notebook", " Notebook", "Notebook ", "SERVER", "Servidor", ""}

	f := NewFactory()
	for _, kind := range tests {
		t.Run(kind, func(t *testing.T) {
			v, err := f.CreateEquipment(kind, "X", "8GB", "i5")
			assert.Nil(t, v)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidEquipmentType))
			assert.Contains(t, err.Error(), "invalid equipment type")
		})
	}
}

func TestRegister(t *testing.T) {
	f := NewFactory()

	err := f.Register("Tablet", func(name, ram, processor string) Variant {
		return &Notebook{Name: name, RAM: ram, Processor: processor}
	})
	require.NoError(t, err)

	v, err := f.CreateEquipment("Tablet", "iPad", "8GB", "M2")
	require.NoError(t, err)
	assert.Equal(t, "Type: Notebook, Name: iPad, RAM: 8GB, Processor: M2", v.Describe(),
		"the label comes from the variant, not the tag")

	// The default factory is untouched
	_, err = CreateEquipment("Tablet", "iPad", "8GB", "M2")
	assert.ErrorIs(t, err, ErrInvalidEquipmentType)
}

func TestRegister_Errors(t *testing.T) {
	f := NewFactory()
	ctor := func(name, ram, processor string) Variant { return &Server{} }

	assert.ErrorIs(t, f.Register("", ctor), ErrEmptyKind)
	assert.ErrorIs(t, f.Register("Rack", nil), ErrNilConstructor)
	assert.ErrorIs(t, f.Register(KindServer, ctor), ErrKindAlreadyDefined)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{KindDesktop, KindNotebook, KindServer}, Kinds())
}

func TestPackageCreateEquipment(t *testing.T) {
	v, err := CreateEquipment("Server", "PowerEdge", "128GB", "Xeon")
	require.NoError(t, err)
	assert.Equal(t, "Type: Server, Name: PowerEdge, RAM: 128GB, Processor: Xeon", v.Describe())
}
