package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/inventario-dashboard/pkg/textutil"
)

func TestContainsFold(t *testing.T) {
	assert.True(t, textutil.ContainsFold("monitor", "Monitor 24 pulgadas"))
	assert.True(t, textutil.ContainsFold("ELEC", "x", "elec-001"))
	assert.True(t, textutil.ContainsFold("", "cualquiera"))
	assert.False(t, textutil.ContainsFold("silla", "Monitor", "ELEC-001"))
}

func TestSortStrings_OrdenEspañol(t *testing.T) {
	ss := []string{"Oficina", "electrónica", "Limpieza", "Ébano", "ñandú", "Nube"}

	textutil.SortStrings(ss)

	assert.Equal(t, []string{"Ébano", "electrónica", "Limpieza", "Nube", "ñandú", "Oficina"}, ss)
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, textutil.Distinct([]string{"B", "A", "", "B"}))
}
