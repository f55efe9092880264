package dataimporter

import (
	"strings"
	"testing"

	"github.com/fdcrail/railmanager/pkg/railnet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const stationsCSV = `id,name,type,lat,lon,platforms
FI,Firenze SMN,interchange,43.79,11.25,16
PO,Prato,station,43.88,11.09,0
DEP,Osmannoro,depot,43.81,11.20,0
`

func TestImportStationsCSV(t *testing.T) {
	network := railnet.NewNetworkGraph("Toscana")

	imported, err := ImportStationsCSV(network, strings.NewReader(stationsCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, imported)

	fi := network.NodeByID("FI")
	require.NotNil(t, fi)
	assert.Equal(t, railnet.NodeTypeInterchange, fi.Type)
	require.NotNil(t, fi.PlatformCapacity)
	assert.Equal(t, 16, *fi.PlatformCapacity)
	require.NotNil(t, fi.Location)
	assert.Equal(t, 43.79, fi.Location.Latitude)

	// Zero platforms means unknown, not zero capacity.
	po := network.NodeByID("PO")
	require.NotNil(t, po)
	assert.Nil(t, po.PlatformCapacity)
}

func TestImportStationsCSVRejectsUnknownType(t *testing.T) {
	network := railnet.NewNetworkGraph("Toscana")

	_, err := ImportStationsCSV(network, strings.NewReader("id,name,type,lat,lon,platforms\nX,X,airport,0,0,0\n"))
	assert.Error(t, err)
}

func TestImportStationsCSVRejectsDuplicate(t *testing.T) {
	network := railnet.NewNetworkGraph("Toscana")
	require.NoError(t, network.AddNode(&railnet.Node{ID: "FI", Name: "Existing", Type: railnet.NodeTypeStation}))

	_, err := ImportStationsCSV(network, strings.NewReader(stationsCSV))
	assert.ErrorIs(t, err, railnet.ErrDuplicateID)
}
