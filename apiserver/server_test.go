package apiserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/logicalclocks/rondb-sub003/config"
)

func newTestServer() *Server {
	return NewServer(config.DefaultConfig())
}

func doAssemble(t *testing.T, s *Server, req AssembleRequest) AssembleResponse {
	t.Helper()
	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	httpReq := httptest.NewRequest(http.MethodPost, "/api/v1/assemble", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httpReq)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp AssembleResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return resp
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAssembleEmptyProgramReturnsExitOK(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{})

	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if len(resp.Words) != 1 {
		t.Fatalf("expected 1 word (EXIT_OK), got %d", len(resp.Words))
	}
}

func TestAssembleForwardBranch(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{
		Instructions: []InstructionSpec{
			{Op: "BRANCH", Args: []uint64{1}},
			{Op: "LOAD_CONST16", Args: []uint64{0, 7}},
			{Op: "DEF_LABEL", Args: []uint64{1}},
			{Op: "EXIT_OK"},
		},
	})
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if len(resp.Words) != 3 {
		t.Fatalf("expected 3 words, got %d", len(resp.Words))
	}
}

func TestAssembleUnknownOpFails(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{
		Instructions: []InstructionSpec{{Op: "NOT_A_REAL_OP"}},
	})
	if resp.Success {
		t.Fatal("expected failure for unknown op")
	}
}

func TestAssembleWithTableSchemaReadAttr(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{
		Table: &TableSpec{
			Name: "t",
			Columns: []ColumnSpec{
				{AttrID: 1, Name: "col1", Type: "fixed_binary", Length: 4},
			},
		},
		Instructions: []InstructionSpec{
			{Op: "READ_ATTR", Args: []uint64{1, 0}},
			{Op: "EXIT_OK"},
		},
	})
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
}

func TestAssembleUnboundAttributeFails(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{
		Instructions: []InstructionSpec{
			{Op: "READ_ATTR", Args: []uint64{1, 0}},
		},
	})
	if resp.Success {
		t.Fatal("expected failure: no table bound")
	}
}

func TestAssembleUsesDiskFlag(t *testing.T) {
	s := newTestServer()
	resp := doAssemble(t, s, AssembleRequest{
		Table: &TableSpec{
			Name: "t",
			Columns: []ColumnSpec{
				{AttrID: 1, Name: "col1", Type: "fixed_binary", Length: 4, Storage: "disk"},
			},
		},
		Instructions: []InstructionSpec{
			{Op: "WRITE_ATTR", Args: []uint64{1, 0}},
			{Op: "EXIT_OK"},
		},
	})
	if !resp.Success {
		t.Fatalf("expected success, got error %q", resp.Error)
	}
	if !resp.UsesDisk {
		t.Fatal("expected UsesDisk to be true")
	}
}
