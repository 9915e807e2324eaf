package router

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"

	"github.com/basedalex/yadro-paice/internal/db"
	"github.com/basedalex/yadro-paice/pkg/config"
	"github.com/basedalex/yadro-paice/pkg/paice"
	"github.com/basedalex/yadro-paice/pkg/words"
)

//go:generate mockgen -source=router.go -destination=mocks/mock.go

type HTTPResponse struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

type stemService interface {
	SaveStem(ctx context.Context, entry db.Entry) error
	Reverse(ctx context.Context) error
	InvertSearch(ctx context.Context, stems []string) (map[string][]string, error)
	GetUserByLogin(ctx context.Context, login string) (db.User, error)
	GetUserPasswordByLogin(ctx context.Context, login string) (string, error)
}

type contextKey string

const userKey contextKey = "user"

type Handler struct {
	limiter     ratelimit.Limiter
	concurrency chan struct{}
	service     stemService
	cfg         *config.Config
	table       *paice.Table
	stemmer     words.Stemmer
}

func NewServer(ctx context.Context, cfg *config.Config, table *paice.Table, service stemService) error {
	srv := &http.Server{
		Addr:              ":" + cfg.SrvPort,
		Handler:           newRouter(cfg, table, service),
		ReadHeaderTimeout: 3 * time.Second,
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*15)

	go func() {
		<-ctx.Done()

		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn(err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("error with the server: %w", err)
	}

	return nil
}

func newRouter(cfg *config.Config, table *paice.Table, service stemService) *http.ServeMux {
	handler := &Handler{
		limiter:     ratelimit.New(cfg.RateLimit),
		concurrency: make(chan struct{}, cfg.ConcurrencyLimit),
		cfg:         cfg,
		service:     service,
		table:       table,
		stemmer:     words.New(cfg.Stemmer, table),
	}

	mux := http.NewServeMux()

	mux.Handle("/update", handler.Guard()(checkRole(
		isAuth(http.HandlerFunc(handler.updateStems)), "admin")))

	mux.HandleFunc("/login", handler.login)
	mux.HandleFunc("/stem", handler.stemWord)
	mux.Handle("/search", handler.Guard()(isAuth(http.HandlerFunc(handler.search))))

	return mux
}

func checkRole(next http.Handler, role string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value(userKey)
		if user != role {
			writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid role"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := r.Context().Value(userKey)
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) Guard() func(http.Handler) http.Handler {
	type MyCustomClaims struct {
		Login string `json:"login"`
		jwt.MapClaims
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := r.Header.Get("token")
			token, err := jwt.ParseWithClaims(tokenString, &MyCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWTSecret), nil
			})
			if err != nil {
				writeErrResponse(w, http.StatusBadRequest, err)
				return
			}

			claims, ok := token.Claims.(*MyCustomClaims)
			if !ok || !token.Valid {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			log.Debug(claims.Login, claims.MapClaims)

			user, err := h.service.GetUserByLogin(r.Context(), claims.Login)
			if err != nil {
				writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
				return
			}

			ctxWithValue := context.WithValue(r.Context(), userKey, user.Role)
			next.ServeHTTP(w, r.WithContext(ctxWithValue))
		})
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeErrResponse(w, http.StatusBadRequest, err)
		return
	}

	storedPassword, err := h.service.GetUserPasswordByLogin(r.Context(), creds.Login)
	if err != nil {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	if storedPassword != creds.Password {
		writeErrResponse(w, http.StatusUnauthorized, fmt.Errorf("invalid credentials"))
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"login": creds.Login,
		"exp":   time.Now().Add(time.Hour * time.Duration(h.cfg.TokenMaxTime)).Unix(),
	})

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, map[string]string{"token": tokenString})
}

func (h *Handler) stemWord(w http.ResponseWriter, r *http.Request) {
	h.limiter.Take()
	h.concurrency <- struct{}{}
	defer func() {
		<-h.concurrency
	}()

	query := r.URL.Query()
	tokens := words.Fields(query.Get("word"))
	if len(tokens) != 1 {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("provide exactly one word"))
		return
	}
	word := tokens[0]

	if query.Get("trace") != "" {
		stem, trace := h.table.StemTrace(word)
		writeOkResponse(w, http.StatusOK, map[string]string{"stem": stem, "trace": trace.String()})
		return
	}

	writeOkResponse(w, http.StatusOK, map[string]string{"stem": h.stemmer.Stem(word)})
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	h.limiter.Take()
	h.concurrency <- struct{}{}
	defer func() {
		<-h.concurrency
	}()

	search := r.URL.Query().Get("search")
	if search == "" {
		writeErrResponse(w, http.StatusBadRequest, fmt.Errorf("no words to search"))
		return
	}

	stems := words.Normalize(search, h.stemmer)

	sm, err := h.service.InvertSearch(r.Context(), stems)
	if err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, sm)
}

func (h *Handler) updateStems(w http.ResponseWriter, r *http.Request) {
	h.limiter.Take()
	h.concurrency <- struct{}{}
	defer func() {
		<-h.concurrency
	}()

	if err := h.setWorker(r.Context()); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	if err := h.service.Reverse(r.Context()); err != nil {
		writeErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	writeOkResponse(w, http.StatusOK, "Updated stems...")
}

// setWorker stems the configured word list with cfg.Parallel workers
// sharing the compiled table and saves every entry through the service.
func (h *Handler) setWorker(ctx context.Context) error {
	file, err := os.Open(h.cfg.WordsFile)
	if err != nil {
		return fmt.Errorf("cannot open word file: %w", err)
	}
	defer file.Close()

	parallel := h.cfg.Parallel
	if parallel <= 0 {
		parallel = 1
	}

	wordCh := make(chan string)
	results := make(chan db.Entry, parallel)

	var wg sync.WaitGroup
	for i := 0; i < parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.task(ctx, wordCh, results)
		}()
	}

	resultDoneCh := make(chan struct{})
	go func() {
		defer close(resultDoneCh)
		for entry := range results {
			if err := h.service.SaveStem(ctx, entry); err != nil {
				log.Info(err)
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	scanner := bufio.NewScanner(file)
loop:
	for scanner.Scan() {
		for _, word := range words.Fields(scanner.Text()) {
			select {
			case wordCh <- word:
			case <-ctx.Done():
				break loop
			}
		}
	}
	close(wordCh)

	<-resultDoneCh
	log.Println("finished stemming word list...")

	return scanner.Err()
}

func (h *Handler) task(ctx context.Context, wordCh <-chan string, results chan<- db.Entry) {
	for {
		select {
		case word, ok := <-wordCh:
			if !ok {
				return
			}
			results <- db.Entry{Word: word, Stem: h.stemmer.Stem(word)}
		case <-ctx.Done():
			return
		}
	}
}

func writeOkResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Infof("successful request with statusCode %d and data type %T", statusCode, data)
	if err := json.NewEncoder(w).Encode(HTTPResponse{Data: data}); err != nil {
		log.Warn(err)
	}
}

func writeErrResponse(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	log.Error(err)
	if encErr := json.NewEncoder(w).Encode(HTTPResponse{Error: err.Error()}); encErr != nil {
		log.Warn(encErr)
	}
}
