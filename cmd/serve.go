package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/bmsdex/bemanilz"
	"github.com/jsphweid/bmsdex/bms"
	"github.com/jsphweid/bmsdex/constants"
	"github.com/jsphweid/bmsdex/model"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetServeAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the codecs over HTTP",
	Long:  `Serves chart parsing, chart normalizing and BemaniLZ decoding over HTTP.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr)
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.GetMaxBodySize()))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body: "+err.Error())
		return nil, false
	}
	return body, true
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	chart, err := bms.Read(bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chart)
}

func HandleNormalize(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	chart, err := bms.Read(bytes.NewReader(body))
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var out bytes.Buffer
	if err := bms.Write(&out, chart); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write(out.Bytes())
}

func HandleLZDecode(w http.ResponseWriter, r *http.Request) {
	body, ok := readBody(w, r)
	if !ok {
		return
	}

	data, err := bemanilz.DecodeBytes(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Write(data)
}

// withRequestID tags every request with an id, echoed back and logged.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Info().Str("request", id).Str("method", r.Method).Str("path", r.URL.Path).Msg("handling request")
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chart/parse", HandleParse).Methods("POST")
	router.HandleFunc("/chart/normalize", HandleNormalize).Methods("POST")
	router.HandleFunc("/lz/decode", HandleLZDecode).Methods("POST")
	router.Use(withRequestID)
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	log.Info().Str("addr", addr).Msg("listening")
	return http.ListenAndServe(addr, NewRouter())
}
