package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantmaint/models"
)

func TestPlantPolicy(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, admin := newUser(t, db, models.RoleAdmin)
	_, manager := newUser(t, db, models.RoleManager)
	_, tech := newUser(t, db, models.RoleTechnician)

	var plant models.Plant
	code := doJSON(t, srv, "POST", "/api/v1/plants", admin,
		map[string]interface{}{"name": "North Works"}, &plant)
	require.Equal(t, http.StatusCreated, code)

	// managers read, technicians see nothing
	code = doJSON(t, srv, "GET", "/api/v1/plants", manager, nil, nil)
	assert.Equal(t, http.StatusOK, code)
	code = doJSON(t, srv, "GET", "/api/v1/plants", tech, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)

	// only admins write
	code = doJSON(t, srv, "POST", "/api/v1/plants", manager,
		map[string]interface{}{"name": "South Works"}, nil)
	assert.Equal(t, http.StatusForbidden, code)
	code = doJSON(t, srv, "DELETE", "/api/v1/plants/"+plant.ID.String(), manager, nil, nil)
	assert.Equal(t, http.StatusForbidden, code)
}

func TestPlantGeofence(t *testing.T) {
	db := setupDB(t)
	srv := newServer(t)
	_, admin := newUser(t, db, models.RoleAdmin)

	geofence := map[string]interface{}{
		"type": "Polygon",
		"coordinates": [][][]float64{{
			{78.40, 17.35}, {78.50, 17.35}, {78.50, 17.45}, {78.40, 17.45}, {78.40, 17.35},
		}},
	}

	var plant models.Plant
	code := doJSON(t, srv, "POST", "/api/v1/plants", admin, map[string]interface{}{
		"name": "Fenced Plant", "geofence": geofence,
	}, &plant)
	require.Equal(t, http.StatusCreated, code)

	containsPath := func(lat, lng float64) string {
		return fmt.Sprintf("/api/v1/plants/%s/contains?lat=%v&lng=%v", plant.ID, lat, lng)
	}

	var result struct {
		Contains bool `json:"contains"`
	}
	code = doJSON(t, srv, "GET", containsPath(17.40, 78.45), admin, nil, &result)
	require.Equal(t, http.StatusOK, code)
	assert.True(t, result.Contains)

	code = doJSON(t, srv, "GET", containsPath(17.60, 78.45), admin, nil, &result)
	require.Equal(t, http.StatusOK, code)
	assert.False(t, result.Contains)

	// missing coordinates
	code = doJSON(t, srv, "GET",
		fmt.Sprintf("/api/v1/plants/%s/contains", plant.ID), admin, nil, nil)
	assert.Equal(t, http.StatusBadRequest, code)

	// plant without a fence
	bare := seedPlant(t, db)
	code = doJSON(t, srv, "GET",
		fmt.Sprintf("/api/v1/plants/%s/contains?lat=17.4&lng=78.45", bare.ID), admin, nil, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	// invalid geofence rejected on create
	code = doJSON(t, srv, "POST", "/api/v1/plants", admin, map[string]interface{}{
		"name": "Bad Fence", "geofence": map[string]interface{}{"type": "Point", "coordinates": []float64{1, 2}},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, code)
}
