package apiserver

import (
	"net/http"

	"github.com/logicalclocks/rondb-sub003/assembler"
)

// handleAssemble handles POST /api/v1/assemble: decode a program
// description, run it through the Assembler, and return the finalised
// word stream or the error that killed it.
func (s *Server) handleAssemble(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AssembleRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	table, err := buildTable(req.Table)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	initialWords := s.cfg.Assembler.InitialBufWords
	if req.InitialBufWords > 0 {
		initialWords = req.InitialBufWords
	}
	maxWords := s.cfg.Assembler.MaxDynamicBufSize
	if req.MaxBufWords > 0 {
		maxWords = req.MaxBufWords
	}

	unknown := s.cfg.UnknownHandlingMode()
	if req.UnknownHandling != "" {
		tmp := *s.cfg
		tmp.Assembler.UnknownHandling = req.UnknownHandling
		unknown = tmp.UnknownHandlingMode()
	}

	a := assembler.NewOwned(table, unknown, initialWords, maxWords)
	for _, instr := range req.Instructions {
		if err := applyInstruction(a, instr); err != nil {
			writeJSON(w, http.StatusOK, AssembleResponse{Success: false, Error: err.Error()})
			return
		}
	}

	if err := a.Finalise(); err != nil {
		writeJSON(w, http.StatusOK, AssembleResponse{Success: false, Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, AssembleResponse{
		Success:  true,
		Words:    a.Words(),
		UsesDisk: a.UsesDisk(),
	})
}
