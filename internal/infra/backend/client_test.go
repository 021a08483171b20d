package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "homeat/internal/delivery/context"
	"homeat/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.URL+"/", "HomEat", srv.Client(), nil)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListRecipes(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/recipes", r.URL.Path)
		writeJSON(w, http.StatusOK, []entity.Recipe{
			{ID: entity.Int64Ptr(1), Title: "Mein Rezept", OwnerID: "user-1"},
			{ID: entity.Int64Ptr(2), Title: "Fremdes Rezept", OwnerID: "other"},
		})
	})

	recipes, err := client.ListRecipes(context.Background())
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Mein Rezept", recipes[0].Title)
	assert.Equal(t, "other", recipes[1].OwnerID)
}

func TestClient_ListRecipes_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "database down", http.StatusInternalServerError)
	})

	recipes, err := client.ListRecipes(context.Background())
	require.Error(t, err)
	assert.Nil(t, recipes)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "Internal Server Error", statusErr.Status)
	assert.Equal(t, "database down\n", statusErr.Body)
	assert.Equal(t, "500 Internal Server Error :: database down\n", err.Error())

	code, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 500, code)
}

func TestClient_CreateRecipe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var dto entity.CreateRecipeDTO
		require.NoError(t, json.NewDecoder(r.Body).Decode(&dto))
		assert.Equal(t, "Neu", dto.Title)
		assert.Equal(t, "user-1", dto.OwnerID)

		writeJSON(w, http.StatusCreated, entity.Recipe{ID: entity.Int64Ptr(10), Title: dto.Title, OwnerID: dto.OwnerID})
	})

	created, err := client.CreateRecipe(context.Background(), &entity.CreateRecipeDTO{
		Title:       "Neu",
		Ingredients: []entity.Ingredient{{Name: "Mehl"}},
		OwnerID:     "user-1",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, int64(10), created.IDValue())
}

func TestClient_CreateRecipe_NonJSONResponseYieldsNoValue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, "ok")
	})

	created, err := client.CreateRecipe(context.Background(), &entity.CreateRecipeDTO{Title: "Neu"})
	require.NoError(t, err)
	assert.Nil(t, created)
}

func TestClient_UpdateAndDeleteRecipe(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPut {
			writeJSON(w, http.StatusOK, entity.Recipe{ID: entity.Int64Ptr(4), Title: "Neu"})

			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	updated, err := client.UpdateRecipe(context.Background(), 4, &entity.CreateRecipeDTO{Title: "Neu"})
	require.NoError(t, err)
	assert.Equal(t, "Neu", updated.Title)

	require.NoError(t, client.DeleteRecipe(context.Background(), 4))
	assert.Equal(t, []string{"PUT /api/recipes/4", "DELETE /api/recipes/4"}, calls)
}

func TestClient_AddReview(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recipes/7/reviews", r.URL.Path)
		var review entity.Review
		require.NoError(t, json.NewDecoder(r.Body).Decode(&review))
		writeJSON(w, http.StatusOK, entity.Recipe{ID: entity.Int64Ptr(7), Reviews: []entity.Review{review}})
	})

	recipe, err := client.AddReview(context.Background(), 7, &entity.Review{Text: "lecker", Rating: 5, AuthorName: "Ana"})
	require.NoError(t, err)
	require.Len(t, recipe.Reviews, 1)
	assert.Equal(t, "lecker", recipe.Reviews[0].Text)
}

func TestClient_UploadImage_Multipart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/images", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		assert.Positive(t, r.ContentLength)
		assert.Empty(t, r.TransferEncoding)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, _ := io.ReadAll(file)

		assert.Equal(t, "soup.png", header.Filename)
		assert.Equal(t, "png-bytes", string(content))
		assert.Equal(t, "3", r.FormValue("recipeId"))

		writeJSON(w, http.StatusCreated, entity.ImageResponse{
			ID: 11, URL: "/api/images/11", Filename: header.Filename, Size: int64(len(content)),
			RecipeID: entity.Int64Ptr(3),
		})
	})

	image, err := client.UploadImage(context.Background(), "soup.png", strings.NewReader("png-bytes"), entity.Int64Ptr(3))
	require.NoError(t, err)
	assert.Equal(t, int64(11), image.ID)
	assert.Equal(t, int64(9), image.Size)
}

func TestClient_UploadImage_WithoutRecipe(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, hasRecipe := r.MultipartForm.Value["recipeId"]
		assert.False(t, hasRecipe)
		writeJSON(w, http.StatusCreated, entity.ImageResponse{ID: 12})
	})

	image, err := client.UploadImage(context.Background(), "a.jpg", strings.NewReader("x"), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), image.ID)
}

func TestClient_UploadImage_EmptyCreated(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Positive(t, r.ContentLength)
		w.WriteHeader(http.StatusCreated)
	})

	image, err := client.UploadImage(context.Background(), "a.jpg", strings.NewReader("x"), nil)
	require.NoError(t, err)
	assert.Nil(t, image)
}

func TestClient_DeleteImage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/images/5", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "no such image")
	})

	err := client.DeleteImage(context.Background(), 5)
	code, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestClient_ImageURL(t *testing.T) {
	client := NewClient("http://backend:8080/", "HomEat", nil, nil)
	assert.Equal(t, "http://backend:8080/api/images/42", client.ImageURL(42))
}

func TestClient_AdjustLikes(t *testing.T) {
	tests := []struct {
		name     string
		increase bool
		query    string
	}{
		{"increase", true, "increase=true"},
		{"decrease", false, "increase=false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/HomEat/3/like", r.URL.Path)
				assert.Equal(t, tt.query, r.URL.RawQuery)
				writeJSON(w, http.StatusOK, entity.Recipe{ID: entity.Int64Ptr(3), Likes: entity.IntPtr(8)})
			})

			recipe, err := client.AdjustLikes(context.Background(), 3, tt.increase)
			require.NoError(t, err)
			assert.Equal(t, 8, recipe.LikeCount())
		})
	}
}

func TestClient_PropagatesRequestID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "req-123", r.Header.Get(deliverycontext.HeaderXRequestID))
		writeJSON(w, http.StatusOK, []entity.Recipe{})
	})

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	_, err := client.ListRecipes(ctx)
	require.NoError(t, err)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := NewClient(srv.URL, "HomEat", nil, nil)

	_, err := client.ListRecipes(context.Background())
	require.Error(t, err)
	_, ok := StatusCode(err)
	assert.False(t, ok)
}
