package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travel-content-admin/internal/location"
)

// The location endpoints are plain functions: the lookup layer is pure and
// needs no dependencies.

// listContinents handles GET /v1/locations/continents
func listContinents(c *gin.Context) {
	c.JSON(http.StatusOK, location.Continents())
}

// listCountries handles GET /v1/locations/continents/:name/countries
func listCountries(c *gin.Context) {
	c.JSON(http.StatusOK, location.CountriesForContinent(c.Param("name")))
}

// listStates handles GET /v1/locations/countries/:code/states
func listStates(c *gin.Context) {
	c.JSON(http.StatusOK, location.StatesForCountry(c.Param("code")))
}

// listCities handles GET /v1/locations/countries/:code/cities
func listCities(c *gin.Context) {
	c.JSON(http.StatusOK, location.CitiesForCountry(c.Param("code")))
}

// searchCountries handles GET /v1/locations/search?q=
func searchCountries(c *gin.Context) {
	c.JSON(http.StatusOK, location.SearchCountries(c.Query("q")))
}
