// SPDX-License-Identifier: Apache-2.0

// Package relayertest provides an in-memory relayer REST server for tests.
// It speaks the same /v1/ wire protocol as a real relayer, backed by a
// relayer.Registry instead of an FHE coprocessor.
package relayertest

import (
	"encoding/json"
	"net/http"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/ulmaulana/FHETalk-sub001/internal/relayer"
)

// Server is a test double for the relayer REST API.
type Server struct {
	registry *relayer.Registry

	// FailNext, when set, makes the next API call answer with the given
	// status code instead of handling the request.
	FailNext int
}

// NewServer returns a Server with an empty ciphertext store.
func NewServer() *Server {
	return &Server{registry: relayer.NewRegistry()}
}

// Registry exposes the underlying ciphertext store so tests can seed or
// inspect handles directly.
func (s *Server) Registry() *relayer.Registry {
	return s.registry
}

// Handler builds the chi router serving the relayer endpoints.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Post("/v1/input-proof", s.failable(s.inputProof))
	router.Post("/v1/public-decrypt", s.failable(s.publicDecrypt))
	router.Post("/v1/user-decrypt", s.failable(s.userDecrypt))
	router.Get("/v1/keys", s.failable(s.keys))

	return router
}

func (s *Server) failable(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.FailNext != 0 {
			code := s.FailNext
			s.FailNext = 0
			http.Error(w, http.StatusText(code), code)
			return
		}
		next(w, r)
	}
}

func (s *Server) inputProof(w http.ResponseWriter, r *http.Request) {
	var req relayer.InputProofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.ContractAddress == "" || req.UserAddress == "" || len(req.Values) == 0 {
		http.Error(w, "missing contract, user or values", http.StatusBadRequest)
		return
	}

	handles, proof := s.registry.Encrypt(req.ContractAddress, req.UserAddress, req.Values)
	writeJSON(w, relayer.InputProofResponse{Handles: handles, InputProof: proof})
}

func (s *Server) publicDecrypt(w http.ResponseWriter, r *http.Request) {
	var req relayer.PublicDecryptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	clearValues := make(map[string]any, len(req.Handles))
	for _, handle := range req.Handles {
		value, ok := s.registry.Lookup(handle)
		if !ok {
			http.Error(w, "unknown handle "+handle, http.StatusNotFound)
			return
		}
		clearValues[handle] = value
	}

	writeJSON(w, map[string]any{"clearValues": clearValues})
}

func (s *Server) userDecrypt(w http.ResponseWriter, r *http.Request) {
	var req relayer.UserDecryptWireRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Signature == "" || req.PublicKey == "" || req.UserAddress == "" {
		http.Error(w, "missing decryption credential", http.StatusUnauthorized)
		return
	}

	result := make(map[string]any, len(req.HandleContractPairs))
	for _, pair := range req.HandleContractPairs {
		value, ok := s.registry.Lookup(pair.Handle)
		if !ok {
			http.Error(w, "unknown handle "+pair.Handle, http.StatusNotFound)
			return
		}
		result[pair.Handle] = value
	}

	writeJSON(w, result)
}

func (s *Server) keys(w http.ResponseWriter, _ *http.Request) {
	publicKey := hexutil.Encode(crypto.Keccak256([]byte("relayertest-fhe-key")))
	writeJSON(w, relayer.KeysResponse{PublicKey: publicKey})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
