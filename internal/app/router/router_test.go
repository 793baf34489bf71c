package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "receitas_backend/internal/feature/auth/adapters"
	authentity "receitas_backend/internal/feature/auth/domain/entity"
	authhandler "receitas_backend/internal/feature/auth/transport/handler"
	authusecase "receitas_backend/internal/feature/auth/usecase"
	recipeadapters "receitas_backend/internal/feature/recipes/adapters"
	recipeentity "receitas_backend/internal/feature/recipes/domain/entity"
	recipehandler "receitas_backend/internal/feature/recipes/transport/handler"
	recipeusecase "receitas_backend/internal/feature/recipes/usecase"
)

// setupServer wires the real usecases and repositories against an in-memory
// database, exactly as main does, minus Redis.
func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authentity.User{},
		&authadapters.SessionModel{},
		&recipeentity.Recipe{},
	))

	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := authadapters.NewSessionGorm(db)
	recipeRepo := recipeadapters.NewRecipeGorm(db)

	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, authusecase.Options{BcryptCost: bcrypt.MinCost})
	recipesUC := recipeusecase.NewRecipesUsecase(recipeRepo, authUC)

	return NewRouter(authhandler.NewAuthHandler(authUC), recipehandler.NewRecipeHandler(recipesUC))
}

// do performs a JSON request against the router.
func do(t *testing.T, router *gin.Engine, method, path, token string, body gin.H) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// signUpAndIn registers a user and returns a session token.
func signUpAndIn(t *testing.T, router *gin.Engine, nome, email, senha string) string {
	t.Helper()

	w := do(t, router, http.MethodPost, "/sign-up", "", gin.H{"nome": nome, "email": email, "senha": senha})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, router, http.MethodPost, "/sign-in", "", gin.H{"email": email, "senha": senha})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotEmpty(t, w.Body.String())
	return w.Body.String()
}

func TestSignUpAndSignInFlow(t *testing.T) {
	router := setupServer(t)

	w := do(t, router, http.MethodPost, "/sign-up", "", gin.H{"nome": "Ana", "email": "a@a.com", "senha": "123"})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Same email again conflicts.
	w = do(t, router, http.MethodPost, "/sign-up", "", gin.H{"nome": "Ana", "email": "a@a.com", "senha": "123"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, router, http.MethodPost, "/sign-in", "", gin.H{"email": "a@a.com", "senha": "123"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Body.String())

	w = do(t, router, http.MethodPost, "/sign-in", "", gin.H{"email": "a@a.com", "senha": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	router := setupServer(t)
	token := signUpAndIn(t, router, "Ana", "a@a.com", "123")

	w := do(t, router, http.MethodPost, "/receitas", token, gin.H{
		"titulo":       "Pão com Ovo",
		"ingredientes": "Ovo e pão",
		"preparo":      "Frite o ovo e coloque no pão",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = do(t, router, http.MethodGet, "/receitas/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Pão com Ovo", got["titulo"])
	assert.Equal(t, "Ovo e pão", got["ingredientes"])
	assert.Equal(t, "Frite o ovo e coloque no pão", got["preparo"])

	// Duplicate title conflicts regardless of the other fields.
	w = do(t, router, http.MethodPost, "/receitas", token, gin.H{
		"titulo":       "Pão com Ovo",
		"ingredientes": "outros",
		"preparo":      "outro",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateRequiresToken(t *testing.T) {
	router := setupServer(t)

	w := do(t, router, http.MethodPost, "/receitas", "", gin.H{
		"titulo":       "Pão com Ovo",
		"ingredientes": "Ovo e pão",
		"preparo":      "Frite",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateOwnership(t *testing.T) {
	router := setupServer(t)
	owner := signUpAndIn(t, router, "Ana", "a@a.com", "123")
	other := signUpAndIn(t, router, "Bia", "b@b.com", "456")

	w := do(t, router, http.MethodPost, "/receitas", owner, gin.H{
		"titulo":       "Pão com Ovo",
		"ingredientes": "Ovo e pão",
		"preparo":      "Frite",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Non-owner update is rejected and changes nothing.
	w = do(t, router, http.MethodPut, "/receitas/1", other, gin.H{"preparo": "hackeado"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, router, http.MethodGet, "/receitas/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Frite", got["preparo"])

	// Owner update applies only the present fields.
	w = do(t, router, http.MethodPut, "/receitas/1", owner, gin.H{"preparo": "novo"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodGet, "/receitas/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "novo", got["preparo"])
	assert.Equal(t, "Pão com Ovo", got["titulo"])
}

func TestBulkUpdateByIngredient(t *testing.T) {
	router := setupServer(t)
	token := signUpAndIn(t, router, "Ana", "a@a.com", "123")

	for _, r := range []gin.H{
		{"titulo": "Pão com Ovo", "ingredientes": "Ovo e pão", "preparo": "Frite"},
		{"titulo": "Omelete", "ingredientes": "OVO e queijo", "preparo": "Bata"},
		{"titulo": "Pão com Whey", "ingredientes": "Whey e pão", "preparo": "Misture"},
	} {
		w := do(t, router, http.MethodPost, "/receitas", token, r)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	// Case-insensitive contains match over ingredients.
	w := do(t, router, http.MethodPut, "/receitas/muitas/ovo", "", gin.H{"preparo": "novo"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 2}`, w.Body.String())

	// A filter matching nothing is 404.
	w = do(t, router, http.MethodPut, "/receitas/muitas/caviar", "", gin.H{"preparo": "novo"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Bulk delete matches the ingredients exactly.
	w = do(t, router, http.MethodDelete, "/receitas/muitas/Whey%20e%20p%C3%A3o", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"count": 1}`, w.Body.String())

	w = do(t, router, http.MethodDelete, "/receitas/muitas/Whey%20e%20p%C3%A3o", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWithoutAuth(t *testing.T) {
	router := setupServer(t)
	token := signUpAndIn(t, router, "Ana", "a@a.com", "123")

	w := do(t, router, http.MethodPost, "/receitas", token, gin.H{
		"titulo":       "Pão com Ovo",
		"ingredientes": "Ovo e pão",
		"preparo":      "Frite",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Delete carries no token, per the published API.
	w = do(t, router, http.MethodDelete, "/receitas/1", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, router, http.MethodDelete, "/receitas/1", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMalformedIDIs404(t *testing.T) {
	router := setupServer(t)

	w := do(t, router, http.MethodGet, "/receitas/not-an-id", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
