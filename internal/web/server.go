// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package web serves the recipe finder UI: the ingredient form and chips,
// result cards, the detail modal and favorite toggles, plus a small JSON
// API over the same session.
package web

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/recipe-finder/internal/ingredients"
	"github.com/pdiddy/recipe-finder/internal/render"
	"github.com/pdiddy/recipe-finder/internal/session"
	"github.com/pdiddy/recipe-finder/pkg/types"
)

//go:embed templates/*.html
var tmplFS embed.FS

var pageTmpl = template.Must(template.ParseFS(tmplFS, "templates/*.html"))

// Server is the web front end of one session.
type Server struct {
	sess   *session.Session
	log    logrus.FieldLogger
	router *gin.Engine
}

// New builds the router for sess.
func New(sess *session.Session, log logrus.FieldLogger) *Server {
	s := &Server{sess: sess, log: log, router: gin.New()}
	s.router.Use(gin.Recovery(), requestID(), requestLogger(log), cors())
	s.router.SetHTMLTemplate(pageTmpl)
	s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) routes() {
	r := s.router
	r.GET("/", s.index)
	r.POST("/ingredients", s.addIngredients)
	r.POST("/ingredients/:index/delete", s.removeIngredient)
	r.POST("/search", s.search)
	r.GET("/recipes/:id", s.detail)
	r.POST("/favorites/:id", s.toggleFavorite)

	api := r.Group("/api")
	{
		api.GET("/search", s.apiSearch)
		api.GET("/recipes/:id", s.apiDetail)
		api.GET("/favorites", s.apiFavorites)
		api.POST("/favorites/:id", s.apiToggleFavorite)
	}
}

// page is the data the index template renders.
type page struct {
	Ingredients []string
	Status      string
	Trail       []string
	Exact       bool
	Cards       []render.Card
	Detail      *detailView
	Favorites   []favoriteLink
}

// favoriteLink is one entry of the favorites list. Source is known only
// for ids among the last results; favorites are stored as bare ids.
type favoriteLink struct {
	ID     string
	Source string
}

// detailView is a detail plus the precomputed lines the modal shows.
type detailView struct {
	types.RecipeDetail
	ID            string
	Favorite      bool
	Timing        string
	Steps         []string
	NutrientLines []string
}

func (s *Server) page() page {
	last, exact := s.sess.Last()
	return page{
		Ingredients: s.sess.Ingredients(),
		Status:      last.Status,
		Trail:       last.Trail,
		Exact:       exact,
		Cards:       render.Cards(last.Summaries, s.sess),
		Favorites:   favoriteLinks(s.sess.Favorites(), last.Summaries),
	}
}

func favoriteLinks(ids []string, summaries []types.RecipeSummary) []favoriteLink {
	sources := make(map[string]string, len(summaries))
	for _, sum := range summaries {
		if _, ok := sources[sum.ID]; !ok {
			sources[sum.ID] = sum.Source
		}
	}
	links := make([]favoriteLink, 0, len(ids))
	for _, id := range ids {
		links = append(links, favoriteLink{ID: id, Source: sources[id]})
	}
	return links
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.page())
}

func (s *Server) addIngredients(c *gin.Context) {
	s.sess.AddIngredients(c.PostForm("text"))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) removeIngredient(c *gin.Context) {
	// A malformed index is out of range like any other.
	if i, err := strconv.Atoi(c.Param("index")); err == nil {
		s.sess.RemoveIngredient(i)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) search(c *gin.Context) {
	s.sess.Submit(c.Request.Context(), strings.TrimSpace(c.PostForm("text")), formBool(c.PostForm("exact")))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) detail(c *gin.Context) {
	id := c.Param("id")
	d := s.sess.DetailByID(c.Request.Context(), id, c.Query("source"))

	p := s.page()
	p.Detail = &detailView{
		RecipeDetail:  d,
		ID:            id,
		Favorite:      s.sess.IsFavorite(id),
		Timing:        render.TimingLine(d),
		NutrientLines: render.NutrientLines(d),
	}
	if d.Instructions != "" {
		p.Detail.Steps = strings.Split(render.PlainText(d.Instructions), "\n")
	}
	c.HTML(http.StatusOK, "index.html", p)
}

func (s *Server) toggleFavorite(c *gin.Context) {
	if _, err := s.sess.ToggleFavorite(c.Request.Context(), c.Param("id")); err != nil {
		logger(c, s.log).WithError(err).Error("saving favorites")
		c.String(http.StatusInternalServerError, "could not save favorites")
		return
	}
	c.Redirect(http.StatusSeeOther, backTo(c.Request))
}

// backTo returns the path of r's referer when it points at this server,
// otherwise "/".
func backTo(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || !strings.HasPrefix(ref.Path, "/") || strings.HasPrefix(ref.Path, "//") {
		return "/"
	}
	if ref.Host != "" && ref.Host != r.Host {
		return "/"
	}
	if ref.Scheme != "" && ref.Scheme != "http" && ref.Scheme != "https" {
		return "/"
	}
	ref.Scheme, ref.Host, ref.User = "", "", nil
	return ref.RequestURI()
}

func (s *Server) apiSearch(c *gin.Context) {
	items := ingredients.Parse(c.Query("ingredients"))
	res := s.sess.Find(c.Request.Context(), items, formBool(c.Query("exact")))
	c.JSON(http.StatusOK, gin.H{
		"status":  res.Status,
		"outcome": res.Outcome.String(),
		"source":  res.Source,
		"results": render.Cards(res.Summaries, s.sess),
	})
}

func (s *Server) apiDetail(c *gin.Context) {
	d := s.sess.DetailByID(c.Request.Context(), c.Param("id"), c.Query("source"))
	c.JSON(http.StatusOK, d)
}

func (s *Server) apiFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": s.sess.Favorites()})
}

func (s *Server) apiToggleFavorite(c *gin.Context) {
	id := c.Param("id")
	on, err := s.sess.ToggleFavorite(c.Request.Context(), id)
	if err != nil {
		logger(c, s.log).WithError(err).Error("saving favorites")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save favorites"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "favorite": on})
}

// formBool accepts checkbox values ("on") as well as strconv booleans.
func formBool(v string) bool {
	if v == "on" {
		return true
	}
	b, _ := strconv.ParseBool(v)
	return b
}
