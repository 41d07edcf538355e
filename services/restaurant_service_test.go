package services

import (
	"testing"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRestaurantFixture(t *testing.T) (*RestaurantService, *ReviewService, *LikeService) {
	db := openTestDB(t)
	restRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	return NewRestaurantService(restRepo, reviewRepo, likeRepo),
		NewReviewService(reviewRepo, restRepo),
		NewLikeService(likeRepo, restRepo)
}

func TestRestaurantCRUD(t *testing.T) {
	svc, _, _ := newRestaurantFixture(t)

	_, err := svc.Create(RestaurantInput{Name: "   "})
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))

	rest, err := svc.Create(RestaurantInput{
		Name:    "La Huequita",
		Cuisine: "Tradicional",
		Sector:  "Centro",
		Lat:     -0.22,
		Lng:     -78.51,
	})
	require.NoError(t, err)
	assert.Zero(t, rest.Rating)
	assert.Zero(t, rest.TotalRatings)

	got, err := svc.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "La Huequita", got.Name)

	newName := "La Huequita Nueva"
	newSector := "Norte"
	updated, err := svc.Update(rest.ID, RestaurantUpdateInput{Name: &newName, Sector: &newSector})
	require.NoError(t, err)
	assert.Equal(t, "La Huequita Nueva", updated.Name)
	assert.Equal(t, "Norte", updated.Sector)

	_, err = svc.Get(9999)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}

func TestRestaurantUpdateKeepsOmittedFields(t *testing.T) {
	svc, _, _ := newRestaurantFixture(t)

	rest, err := svc.Create(RestaurantInput{
		Name:        "Chez X",
		Description: "Comida de barrio",
		Address:     "Av. Amazonas 123",
		Cuisine:     "Tradicional",
		Sector:      "Centro",
		Lat:         -0.22,
		Lng:         -78.51,
	})
	require.NoError(t, err)

	newName := "Chez X Nuevo"
	updated, err := svc.Update(rest.ID, RestaurantUpdateInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Chez X Nuevo", updated.Name)
	assert.Equal(t, "Comida de barrio", updated.Description)
	assert.Equal(t, "Av. Amazonas 123", updated.Address)
	assert.Equal(t, "Tradicional", updated.Cuisine)
	assert.Equal(t, "Centro", updated.Sector)
	assert.Equal(t, -0.22, updated.Lat)
	assert.Equal(t, -78.51, updated.Lng)

	got, err := svc.Get(rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tradicional", got.Cuisine)

	blank := "   "
	_, err = svc.Update(rest.ID, RestaurantUpdateInput{Name: &blank})
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
}

func TestRestaurantListFilters(t *testing.T) {
	svc, _, _ := newRestaurantFixture(t)

	seed := []entity.Restaurant{
		{Name: "A", Cuisine: "Mariscos", Sector: "Norte"},
		{Name: "B", Cuisine: "Parrilla", Sector: "Norte"},
		{Name: "C", Cuisine: "Mariscos", Sector: "Sur"},
	}
	for i := range seed {
		_, err := svc.Create(RestaurantInput{Name: seed[i].Name, Cuisine: seed[i].Cuisine, Sector: seed[i].Sector})
		require.NoError(t, err)
	}

	all, err := svc.List(nil, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	norte, err := svc.List(nil, "Norte")
	require.NoError(t, err)
	assert.Len(t, norte, 2)

	mariscosNorte, err := svc.List([]string{"Mariscos"}, "Norte")
	require.NoError(t, err)
	require.Len(t, mariscosNorte, 1)
	assert.Equal(t, "A", mariscosNorte[0].Name)
}

func TestRestaurantDeleteCascades(t *testing.T) {
	svc, reviews, likes := newRestaurantFixture(t)

	rest, err := svc.Create(RestaurantInput{Name: "Condenado"})
	require.NoError(t, err)

	_, err = reviews.Create(rest.ID, 1, "Ana", ReviewInput{Rating: 4})
	require.NoError(t, err)
	_, err = likes.Toggle(rest.ID, 1)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(rest.ID))

	_, err = svc.Get(rest.ID)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))

	left, err := reviews.ListForRestaurant(rest.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	_, err = likes.Toggle(rest.ID, 1)
	assert.Equal(t, errs.KindNotFound, errs.KindOf(err))
}
