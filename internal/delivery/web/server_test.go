package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"homeat/config"
	webmiddleware "homeat/internal/delivery/web/middleware"
	"homeat/internal/delivery/web/router"
	"homeat/internal/delivery/web/router/handler"
	"homeat/internal/domain/entity"
	domainerrors "homeat/internal/domain/errors"
	"homeat/internal/infra/backend"
	"homeat/internal/infra/export"
	"homeat/internal/infra/favorites"
	"homeat/internal/infra/qrcode"
	"homeat/internal/usecase/impl"

	"github.com/PuerkitoBio/goquery"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gocloud.dev/blob/memblob"
)

const userToken = "token-user-1"

type stubVerifier map[string]entity.Identity

func (s stubVerifier) Verify(_ context.Context, rawToken string) (*entity.Identity, error) {
	identity, ok := s[rawToken]
	if !ok {
		return nil, domainerrors.ErrInvalidToken
	}

	return &identity, nil
}

// fakeBackend is an in-memory stand-in for the recipe REST backend.
type fakeBackend struct {
	mu           sync.Mutex
	recipes      []*entity.Recipe
	nextID       int64
	listStatus   int
	createStatus int
	likeStatus   int
	likeCalls    []string
	creates      int
	// uploadEmpty makes image uploads answer 201 without a body.
	uploadEmpty   bool
	uploads       []string
	deletedImages []string
}

func (b *fakeBackend) find(id string) *entity.Recipe {
	for _, r := range b.recipes {
		if strconv.FormatInt(r.IDValue(), 10) == id {
			return r
		}
	}

	return nil
}

func (b *fakeBackend) handler() http.Handler {
	writeJSON := func(w http.ResponseWriter, status int, v any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(v)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/recipes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.listStatus != 0 {
			http.Error(w, "list failed", b.listStatus)

			return
		}
		writeJSON(w, http.StatusOK, b.recipes)
	})
	mux.HandleFunc("POST /api/recipes", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.creates++
		if b.createStatus != 0 {
			http.Error(w, "create failed", b.createStatus)

			return
		}
		var dto entity.CreateRecipeDTO
		_ = json.NewDecoder(r.Body).Decode(&dto)
		b.nextID++
		recipe := &entity.Recipe{
			ID:          entity.Int64Ptr(b.nextID),
			Title:       dto.Title,
			Description: dto.Description,
			Ingredients: dto.Ingredients,
			OwnerID:     dto.OwnerID,
			Likes:       entity.IntPtr(0),
		}
		b.recipes = append(b.recipes, recipe)
		writeJSON(w, http.StatusCreated, recipe)
	})
	mux.HandleFunc("DELETE /api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, recipe := range b.recipes {
			if strconv.FormatInt(recipe.IDValue(), 10) == r.PathValue("id") {
				b.recipes = append(b.recipes[:i], b.recipes[i+1:]...)
			}
		}
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("POST /api/recipes/{id}/reviews", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		recipe := b.find(r.PathValue("id"))
		var review entity.Review
		_ = json.NewDecoder(r.Body).Decode(&review)
		recipe.Reviews = append(recipe.Reviews, review)
		writeJSON(w, http.StatusOK, recipe)
	})
	mux.HandleFunc("POST /HomEat/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.likeCalls = append(b.likeCalls, r.PathValue("id")+"?"+r.URL.RawQuery)
		if b.likeStatus != 0 {
			http.Error(w, "like failed", b.likeStatus)

			return
		}
		recipe := b.find(r.PathValue("id"))
		likes := recipe.LikeCount()
		if r.URL.Query().Get("increase") == "true" {
			likes++
		} else {
			likes--
		}
		recipe.Likes = entity.IntPtr(likes)
		writeJSON(w, http.StatusOK, recipe)
	})
	mux.HandleFunc("POST /api/images", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}
		defer file.Close()
		content, _ := io.ReadAll(file)
		b.uploads = append(b.uploads, header.Filename+"@"+r.FormValue("recipeId"))
		if b.uploadEmpty {
			w.WriteHeader(http.StatusCreated)

			return
		}
		writeJSON(w, http.StatusCreated, entity.ImageResponse{
			ID: 500, URL: "/api/images/500", Filename: header.Filename, Size: int64(len(content)),
		})
	})
	mux.HandleFunc("DELETE /api/images/{id}", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.deletedImages = append(b.deletedImages, r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

type testApp struct {
	echo    *echo.Echo
	backend *fakeBackend
}

func newTestApp(t *testing.T, recipes ...*entity.Recipe) *testApp {
	t.Helper()

	fake := &fakeBackend{recipes: recipes, nextID: 100}
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	client := backend.NewClient(srv.URL, "HomEat", srv.Client(), logger)

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := favorites.NewBlobStore(bucket, logger)

	recipeUC := impl.NewRecipeService(impl.RecipeServiceParams{RecipeRepo: client, ImageRepo: client, Logger: logger})
	favoritesUC := impl.NewFavoritesService(impl.FavoritesServiceParams{Favorites: store, Likes: client, Logger: logger})
	shoppingUC := impl.NewShoppingService(impl.ShoppingServiceParams{
		Recipes:   recipeUC,
		Favorites: favoritesUC,
		Exporter:  export.NewXLSXExporter(),
		Logger:    logger,
	})

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	verifier := stubVerifier{userToken: {Subject: "user-1", Name: "Ana", Authenticated: true}}

	e, err := NewEcho(cfg, logger, router.RouterParams{
		RecipeHandler: handler.NewRecipeHandler(handler.RecipeHandlerParams{
			RecipeUC: recipeUC, FavoritesUC: favoritesUC, Logger: logger,
		}),
		FavoriteHandler: handler.NewFavoriteHandler(handler.FavoriteHandlerParams{
			RecipeUC: recipeUC, FavoritesUC: favoritesUC, Logger: logger,
		}),
		ImageHandler:    handler.NewImageHandler(handler.ImageHandlerParams{RecipeUC: recipeUC, Logger: logger}),
		ShoppingHandler: handler.NewShoppingHandler(handler.ShoppingHandlerParams{ShoppingUC: shoppingUC, Logger: logger}),
		ShareHandler: handler.NewShareHandler(handler.ShareHandlerParams{
			QRCodeService: qrcode.NewQRCodeService(128, "M", "http://homeat.test"),
		}),
		AuthHandler: handler.NewAuthHandler(handler.AuthHandlerParams{
			Verifier: verifier, Config: cfg, Logger: logger,
		}),
		IdentityMiddleware: webmiddleware.NewIdentityMiddleware(verifier, cfg, logger),
	})
	require.NoError(t, err)

	return &testApp{echo: e, backend: fake}
}

func (a *testApp) do(t *testing.T, method, target string, form url.Values, signedIn bool) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	if signedIn {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

// upload posts a multipart form to /images. An empty filename leaves the
// file part out.
func (a *testApp) upload(t *testing.T, filename, content, recipeID string, wantJSON bool) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if filename != "" {
		part, err := form.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = io.WriteString(part, content)
		require.NoError(t, err)
	}
	if recipeID != "" {
		require.NoError(t, form.WriteField("recipeId", recipeID))
	}
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/images", &body)
	req.Header.Set(echo.HeaderContentType, form.FormDataContentType())
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
	if wantJSON {
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

func document(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)

	return doc
}

func sampleRecipes() []*entity.Recipe {
	return []*entity.Recipe{
		{ID: entity.Int64Ptr(1), Title: "Mein Rezept", OwnerID: "user-1", Likes: entity.IntPtr(3),
			Ingredients: []entity.Ingredient{{Name: "Mehl", Quantity: "200 g"}}},
		{ID: entity.Int64Ptr(2), Title: "Fremdes Rezept", OwnerID: "other"},
	}
}

func TestRecipesPage_ShowsOnlyOwnRecipes(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.do(t, http.MethodGet, "/recipes", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	titles := doc.Find("#recipes .recipe-title").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{"Mein Rezept"}, titles)
	assert.Equal(t, "Your favorites", doc.Find("#favorites h2").Text())
	assert.Equal(t, "No reviews yet.", strings.TrimSpace(doc.Find("#recipe-1 .no-reviews").Text()))
	assert.Equal(t, 1, doc.Find("#recipe-1 .favorite-toggle").Length())
}

func TestRecipesPage_Anonymous(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.do(t, http.MethodGet, "/", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	assert.Equal(t, 0, doc.Find("#favorites").Length())
	assert.Equal(t, 0, doc.Find(".recipe").Length())
	assert.Equal(t, "No recipes saved yet.", strings.TrimSpace(doc.Find("#recipes .empty").Text()))
}

func TestRecipesPage_LoadFailure(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)
	app.backend.listStatus = http.StatusInternalServerError

	rec := app.do(t, http.MethodGet, "/recipes", nil, true)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	doc := document(t, rec)
	assert.Equal(t, "Error: HTTP 500", strings.TrimSpace(doc.Find(".load-error").Text()))
	assert.Equal(t, 0, doc.Find(".recipe").Length())
}

func TestRecipesPage_NoRecipes(t *testing.T) {
	app := newTestApp(t)

	doc := document(t, app.do(t, http.MethodGet, "/recipes", nil, true))
	assert.Equal(t, "No recipes saved yet.", strings.TrimSpace(doc.Find("#recipes .empty").Text()))
}

func TestCreateRecipe_ResetsForm(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/recipes", url.Values{
		"title":              {"Pfannkuchen"},
		"description":        {"Sonntagsfrühstück"},
		"ingredientName":     {"Mehl", ""},
		"ingredientQuantity": {"200 g", ""},
		"action":             {"save"},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)

	doc := document(t, rec)
	title, _ := doc.Find(`#new-recipe input[name="title"]`).Attr("value")
	assert.Empty(t, title)
	assert.Empty(t, doc.Find(`#new-recipe textarea[name="description"]`).Text())
	assert.Equal(t, 1, doc.Find("#new-recipe .ingredient-row").Length())
	assert.Equal(t, 0, doc.Find(".save-error").Length())

	assert.Equal(t, "Pfannkuchen", doc.Find("#recipes .recipe-title").First().Text())
	require.Len(t, app.backend.recipes, 1)
	assert.Equal(t, "user-1", app.backend.recipes[0].OwnerID)
	assert.Equal(t, []entity.Ingredient{{Name: "Mehl", Quantity: "200 g"}}, app.backend.recipes[0].Ingredients)
}

func TestCreateRecipe_SaveFailureKeepsForm(t *testing.T) {
	app := newTestApp(t)
	app.backend.createStatus = http.StatusInternalServerError

	rec := app.do(t, http.MethodPost, "/recipes", url.Values{
		"title":              {"Pfannkuchen"},
		"description":        {"Sonntagsfrühstück"},
		"ingredientName":     {"Mehl"},
		"ingredientQuantity": {"200 g"},
	}, true)
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	doc := document(t, rec)
	assert.Equal(t, "Error: save failed", strings.TrimSpace(doc.Find(".save-error").Text()))
	title, _ := doc.Find(`#new-recipe input[name="title"]`).Attr("value")
	assert.Equal(t, "Pfannkuchen", title)
	assert.Equal(t, "Sonntagsfrühstück", doc.Find(`#new-recipe textarea[name="description"]`).Text())
	name, _ := doc.Find(`#new-recipe input[name="ingredientName"]`).Attr("value")
	assert.Equal(t, "Mehl", name)
}

func TestCreateRecipe_ValidationError(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/recipes", url.Values{"title": {"  "}, "action": {"save"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, document(t, rec).Find(".save-error").Text(), "title is required")
	assert.Zero(t, app.backend.creates)
}

func TestCreateRecipe_RowActions(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodPost, "/recipes", url.Values{
		"title":              {"Brot"},
		"ingredientName":     {"Mehl"},
		"ingredientQuantity": {"500 g"},
		"action":             {"add-row"},
	}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	doc := document(t, rec)
	assert.Equal(t, 2, doc.Find("#new-recipe .ingredient-row").Length())
	title, _ := doc.Find(`#new-recipe input[name="title"]`).Attr("value")
	assert.Equal(t, "Brot", title)

	rec = app.do(t, http.MethodPost, "/recipes", url.Values{
		"ingredientName":     {"Mehl", "Salz"},
		"ingredientQuantity": {"500 g", ""},
		"action":             {"remove-row:0"},
	}, true)
	doc = document(t, rec)
	require.Equal(t, 1, doc.Find("#new-recipe .ingredient-row").Length())
	name, _ := doc.Find(`#new-recipe input[name="ingredientName"]`).Attr("value")
	assert.Equal(t, "Salz", name)

	rec = app.do(t, http.MethodPost, "/recipes", url.Values{
		"ingredientName": {"Salz"},
		"action":         {"remove-row:0"},
	}, true)
	assert.Equal(t, 1, document(t, rec).Find("#new-recipe .ingredient-row").Length())
	assert.Zero(t, app.backend.creates)
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.do(t, http.MethodPost, "/recipes/1/favorite", url.Values{}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recipes#recipe-1", rec.Header().Get(echo.HeaderLocation))

	doc := document(t, app.do(t, http.MethodGet, "/recipes", nil, true))
	assert.Equal(t, "Mein Rezept", doc.Find("#favorites .favorite-title").Text())
	assert.Equal(t, "4", doc.Find("#recipe-1 .like-count").Text())
	pressed, _ := doc.Find("#recipe-1 .favorite-toggle").Attr("aria-pressed")
	assert.Equal(t, "true", pressed)

	app.do(t, http.MethodPost, "/recipes/1/favorite", url.Values{}, true)
	doc = document(t, app.do(t, http.MethodGet, "/recipes", nil, true))
	assert.Equal(t, 0, doc.Find("#favorites .favorite").Length())
	assert.Equal(t, "3", doc.Find("#recipe-1 .like-count").Text())

	assert.Equal(t, []string{"1?increase=true", "1?increase=false"}, app.backend.likeCalls)
}

func TestToggleFavorite_NotifyFailureKeepsFavorite(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)
	app.backend.likeStatus = http.StatusInternalServerError

	req := httptest.NewRequest(http.MethodPost, "/recipes/1/favorite", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+userToken)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	app.echo.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data handler.FavoriteResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.Favorite)
	assert.False(t, body.Data.Confirmed)

	doc := document(t, app.do(t, http.MethodGet, "/recipes", nil, true))
	assert.Equal(t, "Mein Rezept", doc.Find("#favorites .favorite-title").Text())
}

func TestToggleFavorite_RequiresOwnRecipe(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/recipes/1/favorite", url.Values{}, false).Code)
	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodPost, "/recipes/2/favorite", url.Values{}, true).Code)
	assert.Empty(t, app.backend.likeCalls)
}

func TestAddReview(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.do(t, http.MethodPost, "/recipes/1/reviews", url.Values{"text": {"lecker"}, "rating": {"4"}}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	doc := document(t, app.do(t, http.MethodGet, "/recipes", nil, true))
	assert.Equal(t, "lecker", doc.Find("#recipe-1 .review-text").Text())
	assert.Equal(t, "Ana", doc.Find("#recipe-1 .author").Text())
	assert.Equal(t, "★★★★☆", doc.Find("#recipe-1 .rating").Text())
	assert.Equal(t, 0, doc.Find("#recipe-1 .no-reviews").Length())

	rec = app.do(t, http.MethodPost, "/recipes/1/reviews", url.Values{"text": {"   "}, "rating": {"4"}}, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "review text must not be empty")
}

func TestEditAndDeleteRecipe(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	doc := document(t, app.do(t, http.MethodGet, "/recipes/1/edit", nil, true))
	title, _ := doc.Find(`#edit-recipe input[name="title"]`).Attr("value")
	assert.Equal(t, "Mein Rezept", title)
	action, _ := doc.Find("#edit-recipe form.recipe-form").Attr("action")
	assert.Equal(t, "/recipes/1", action)

	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodGet, "/recipes/2/edit", nil, true).Code)
	assert.Equal(t, http.StatusNotFound, app.do(t, http.MethodGet, "/recipes/42/edit", nil, true).Code)

	rec := app.do(t, http.MethodPost, "/recipes/1/delete", url.Values{}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Len(t, app.backend.recipes, 1)
}

func TestImageUpload_RedirectsAfterUpload(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.upload(t, "soup.png", "png-bytes", "1", false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recipes", rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{"soup.png@1"}, app.backend.uploads)

	rec = app.upload(t, "cake.jpg", "jpg-bytes", "", true)
	require.Equal(t, http.StatusCreated, rec.Code)
	var body struct {
		Data entity.ImageResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(500), body.Data.ID)
	assert.Equal(t, "cake.jpg", body.Data.Filename)
}

func TestImageUpload_EmptyBackendResponse(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)
	app.backend.uploadEmpty = true

	var rec *httptest.ResponseRecorder
	require.NotPanics(t, func() {
		rec = app.upload(t, "soup.png", "png-bytes", "1", false)
	})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recipes", rec.Header().Get(echo.HeaderLocation))

	require.NotPanics(t, func() {
		rec = app.upload(t, "soup.png", "png-bytes", "", true)
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Len(t, app.backend.uploads, 2)
}

func TestImageUpload_Rejections(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.upload(t, "", "", "1", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
	assert.Contains(t, rec.Body.String(), "file is required")

	rec = app.upload(t, "", "", "", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, document(t, rec).Find("#error .error").Text(), "file is required")

	rec = app.upload(t, "soup.png", "png-bytes", "2", false)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	assert.Empty(t, app.backend.uploads)
}

func TestImageDelete(t *testing.T) {
	recipes := sampleRecipes()
	recipes[0].Images = []entity.RecipeImage{{ID: 7}}
	recipes[1].Images = []entity.RecipeImage{{ID: 8}}
	app := newTestApp(t, recipes...)

	rec := app.do(t, http.MethodPost, "/images/7/delete", url.Values{}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/recipes", rec.Header().Get(echo.HeaderLocation))

	assert.Equal(t, http.StatusForbidden, app.do(t, http.MethodPost, "/images/8/delete", url.Values{}, true).Code)
	assert.Equal(t, http.StatusUnauthorized, app.do(t, http.MethodPost, "/images/7/delete", url.Values{}, false).Code)
	assert.Equal(t, []string{"7"}, app.backend.deletedImages)
}

func TestShoppingList(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	doc := document(t, app.do(t, http.MethodGet, "/shopping", nil, true))
	assert.Contains(t, doc.Find("#shopping .empty").Text(), "shopping list is empty")

	app.do(t, http.MethodPost, "/recipes/1/favorite", url.Values{}, true)

	doc = document(t, app.do(t, http.MethodGet, "/shopping", nil, true))
	assert.Equal(t, "Mehl", doc.Find(".shopping-item .item-name").Text())
	assert.Equal(t, "200 g", doc.Find(".shopping-item .item-quantities").Text())

	rec := app.do(t, http.MethodGet, "/shopping.xlsx", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "einkaufsliste.xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Mehl", "200 g", "Mein Rezept"}, rows[1])
}

func TestRecipeQR(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/recipes/7/qr", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String()[:4])

	assert.Equal(t, http.StatusBadRequest, app.do(t, http.MethodGet, "/recipes/abc/qr", nil, false).Code)
}

func TestSessionCookie(t *testing.T) {
	app := newTestApp(t, sampleRecipes()...)

	rec := app.do(t, http.MethodPost, "/auth/session", url.Values{"token": {userToken}}, false)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "homeat_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/recipes", nil)
	req.AddCookie(cookies[0])
	page := httptest.NewRecorder()
	app.echo.ServeHTTP(page, req)
	doc := document(t, page)
	assert.Contains(t, doc.Find(".signed-in").Text(), "Ana")
	assert.Equal(t, 1, doc.Find(".recipe").Length())

	rec = app.do(t, http.MethodPost, "/auth/session", url.Values{"token": {"forged"}}, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = app.do(t, http.MethodPost, "/auth/logout", url.Values{}, true)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestUnknownRouteRendersErrorPage(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(t, http.MethodGet, "/nope", nil, false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, fmt.Sprintf("Error: %s", "Not Found"), strings.TrimSpace(document(t, rec).Find("#error .error").Text()))
}
