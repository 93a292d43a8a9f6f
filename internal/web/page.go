package web

import (
	_ "embed"
	"errors"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/chorus/internal/catalog"
	"github.com/llehouerou/chorus/internal/recommend"
	"github.com/llehouerou/chorus/internal/session"
)

//go:embed templates/index.html
var indexHTML string

var pageTmpl = template.Must(template.New("index").Parse(indexHTML))

type option struct {
	Value    string
	Selected bool
}

type songView struct {
	Name   string
	Artist string
	Label  string
	Score  string
	Player template.HTML
}

type pageData struct {
	Title        string
	DatasetTypes []option
	Variants     []option
	Categories   []option
	Category     string
	Total        string
	Top          *songView
	Next         *songView
	Message      string
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	e := sessionFrom(r.Context())
	e.mu.Lock()
	data, err := s.pageData(e.sess)
	e.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Msg("render player")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error().Err(err).Msg("render page")
	}
}

func (s *Server) handleFormDatasetType(w http.ResponseWriter, r *http.Request) {
	s.applyForm(w, r, func(sess *session.Session) error {
		return sess.SetDatasetType(catalog.DatasetType(r.PostFormValue("dataset_type")))
	})
}

func (s *Server) handleFormDataset(w http.ResponseWriter, r *http.Request) {
	s.applyForm(w, r, func(sess *session.Session) error {
		return sess.SetVariant(r.PostFormValue("variant"))
	})
}

func (s *Server) handleFormCategory(w http.ResponseWriter, r *http.Request) {
	s.applyForm(w, r, func(sess *session.Session) error {
		_, err := sess.SetCategory(r.PostFormValue("category"))
		return err
	})
}

func (s *Server) handleFormAnother(w http.ResponseWriter, r *http.Request) {
	s.applyForm(w, r, func(sess *session.Session) error {
		sess.Another()
		return nil
	})
}

// applyForm runs fn under the session lock and redirects back to the page.
func (s *Server) applyForm(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	e := sessionFrom(r.Context())
	e.mu.Lock()
	err := fn(e.sess)
	e.mu.Unlock()

	if err != nil {
		if isSelectionError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.log.Error().Err(err).Msg("session update")
		http.Error(w, "dataset unavailable", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isSelectionError(err error) bool {
	return errors.Is(err, session.ErrUnknownDatasetType) ||
		errors.Is(err, session.ErrUnknownVariant) ||
		errors.Is(err, session.ErrUnknownCategory)
}

func (s *Server) pageData(sess *session.Session) (pageData, error) {
	d := sess.Display()
	data := pageData{
		Title:    "Music Recommendation App",
		Category: d.Category,
		Total:    humanize.Comma(int64(d.Total)),
		Message:  d.Message,
	}

	for _, t := range sess.DatasetTypes() {
		data.DatasetTypes = append(data.DatasetTypes, option{Value: string(t), Selected: t == sess.DatasetType()})
	}
	for _, v := range sess.Variants() {
		data.Variants = append(data.Variants, option{Value: v.Description, Selected: v.Description == sess.Variant().Description})
	}
	for _, c := range sess.Categories() {
		data.Categories = append(data.Categories, option{Value: c, Selected: c == sess.Category()})
	}

	var err error
	if data.Top, err = s.songView(d.Top); err != nil {
		return data, err
	}
	if d.Status == recommend.StatusShowing && d.Drawn() {
		if data.Next, err = s.songView(d.Song); err != nil {
			return data, err
		}
	}
	return data, nil
}

func (s *Server) songView(song *catalog.Song) (*songView, error) {
	if song == nil {
		return nil, nil
	}
	frame, err := s.opts.Player.IFrame(song.ID)
	if err != nil {
		return nil, err
	}
	return &songView{
		Name:   song.Name,
		Artist: song.Artist,
		Label:  song.Score.Label(),
		Score:  song.Score.String(),
		Player: frame,
	}, nil
}
