package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"boardrank/internal/models"

	"github.com/stretchr/testify/assert"
)

func postFormAs(r http.Handler, apiKey, path string, form url.Values) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitLink(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	user := createHandlerUser(t, db, "submitter")

	t.Run("Success redirects home", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "Cascadia")
		form.Set("description", "Tile laying with animals")

		w := postFormAs(r, user.APIKey, "/submit", form)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		var link models.Link
		assert.NoError(t, db.Where("title = ?", "Cascadia").First(&link).Error)
		assert.Equal(t, user.ID, link.UserID)
	})

	t.Run("Missing fields rejected", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "No description")

		w := postFormAs(r, user.APIKey, "/submit", form)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Anonymous redirected to login", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "Sneaky")
		form.Set("description", "No session")

		w := postFormAs(r, "", "/submit", form)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})
}

func TestEditLink(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	author := createHandlerUser(t, db, "author")
	other := createHandlerUser(t, db, "other")
	link := createHandlerLink(t, db, author.ID, "Before edit")

	t.Run("Author edits", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "After edit")
		form.Set("description", "Updated text")

		w := postFormAs(r, author.APIKey, fmt.Sprintf("/edit/%d", link.ID), form)
		assert.Equal(t, http.StatusFound, w.Code)

		var reloaded models.Link
		assert.NoError(t, db.First(&reloaded, link.ID).Error)
		assert.Equal(t, "After edit", reloaded.Title)
	})

	t.Run("Non-author redirected away", func(t *testing.T) {
		form := url.Values{}
		form.Set("title", "Hijack")
		form.Set("description", "Nope")

		w := postFormAs(r, other.APIKey, fmt.Sprintf("/edit/%d", link.ID), form)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))

		var reloaded models.Link
		assert.NoError(t, db.First(&reloaded, link.ID).Error)
		assert.Equal(t, "After edit", reloaded.Title)
	})
}

func TestDeleteLinkHandler(t *testing.T) {
	h, db := setupTestHandler()
	r := setupTestRouter(h)

	author := createHandlerUser(t, db, "author")
	rater := createHandlerUser(t, db, "rater")
	link := createHandlerLink(t, db, author.ID, "Doomed")

	w := rateAs(r, rater.APIKey, link.ID, 1)
	assert.Equal(t, http.StatusOK, w.Code)

	t.Run("Non-author cannot delete", func(t *testing.T) {
		w := postFormAs(r, rater.APIKey, fmt.Sprintf("/delete/%d", link.ID), url.Values{})
		assert.Equal(t, http.StatusFound, w.Code)

		var count int64
		db.Model(&models.Link{}).Where("id = ?", link.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Author delete removes ratings too", func(t *testing.T) {
		w := postFormAs(r, author.APIKey, fmt.Sprintf("/delete/%d", link.ID), url.Values{})
		assert.Equal(t, http.StatusFound, w.Code)

		var links, ratings int64
		db.Model(&models.Link{}).Where("id = ?", link.ID).Count(&links)
		db.Model(&models.Rating{}).Where("link_id = ?", link.ID).Count(&ratings)
		assert.Equal(t, int64(0), links)
		assert.Equal(t, int64(0), ratings)
	})
}
