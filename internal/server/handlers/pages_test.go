package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/welbinator/therepo/internal/database"
	"github.com/welbinator/therepo/internal/models"
)

func TestHomePage_QueryFailureIs500(t *testing.T) {
	_, _ = newTestApp(t)
	app := fiber.New()
	app.Get("/", HomePage)

	sqlDB, err := database.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}

func TestSubmissionPage_TermLookupFailureIs500(t *testing.T) {
	_, user := newTestApp(t)
	sub := seedSubmission(t, user.ID)
	app := fiber.New()
	app.Get("/submissions/:id", SubmissionPage)

	// the record loads fine but the term join fails
	require.NoError(t, database.DB.Migrator().DropTable(&models.SubmissionTerm{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/submissions/"+itoa(sub.ID), nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
