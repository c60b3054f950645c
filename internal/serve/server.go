package serve

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"subpulse/internal/analytics"
	"subpulse/internal/config"
	"subpulse/internal/record"
)

// JSONRPCRequest represents a standard MCP/JSON-RPC request.
type JSONRPCRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      interface{}     `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// JSONRPCResponse represents a standard MCP/JSON-RPC response.
type JSONRPCResponse struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      interface{} `json:"id"`
	Result  interface{} `json:"result,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// Server exposes submission analytics to an external consumer over a
// stdio JSON-RPC loop.
type Server struct {
	cfg *config.AppConfig
	out io.Writer
	// now supplies the pending-risk reference time; overridable in tests.
	now func() time.Time
}

// NewServer creates a new analytics server.
func NewServer(cfg *config.AppConfig) *Server {
	return &Server{cfg: cfg, out: os.Stdout, now: time.Now}
}

// Serve starts the JSON-RPC loop over Stdio.
func (s *Server) Serve() error {
	reader := bufio.NewReader(os.Stdin)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		var req JSONRPCRequest
		if err := json.Unmarshal(line, &req); err != nil {
			log.Error().Err(err).Msg("Failed to unmarshal request")
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req JSONRPCRequest) {
	var result interface{}
	var errRes interface{}

	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": "2024-11-05",
			"capabilities":    map[string]interface{}{},
			"serverInfo": map[string]interface{}{
				"name":    "subpulse",
				"version": "0.1.0",
			},
		}
	case "tools/list":
		result = s.listTools()
	case "tools/call":
		result, errRes = s.callTool(req.Params)
	default:
		errRes = map[string]interface{}{
			"code":    -32601,
			"message": fmt.Sprintf("Method %s not found", req.Method),
		}
	}

	resp := JSONRPCResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result:  result,
		Error:   errRes,
	}

	out, _ := json.Marshal(resp)
	fmt.Fprintf(s.out, "%s\n", out)
}

func (s *Server) callTool(params json.RawMessage) (interface{}, interface{}) {
	var call struct {
		Name      string                 `json:"name"`
		Arguments map[string]interface{} `json:"arguments"`
	}
	if err := json.Unmarshal(params, &call); err != nil {
		return nil, map[string]interface{}{"code": -32602, "message": "Invalid params"}
	}

	var data interface{}
	var err error

	switch call.Name {
	case "analyze_submissions":
		data, err = s.handleAnalyze(call.Arguments)
	case "list_courses":
		data, err = s.handleListCourses(call.Arguments)
	default:
		return nil, map[string]interface{}{"code": -32601, "message": "Tool not found"}
	}

	if err != nil {
		return nil, map[string]interface{}{"code": -32000, "message": err.Error()}
	}

	return map[string]interface{}{
		"content": []interface{}{
			map[string]interface{}{
				"type": "text",
				"text": s.formatResult(data),
			},
		},
	}, nil
}

func (s *Server) formatResult(data interface{}) string {
	out, _ := json.MarshalIndent(data, "", "  ")
	return string(out)
}

// loadRecords resolves the records path (tool argument overrides config)
// and loads the store.
func (s *Server) loadRecords(args map[string]interface{}) ([]record.Assignment, error) {
	path := s.cfg.RecordsPath
	if p, _ := args["records_path"].(string); p != "" {
		path = p
	}
	return record.LoadFile(path)
}

func (s *Server) handleAnalyze(args map[string]interface{}) (interface{}, error) {
	records, err := s.loadRecords(args)
	if err != nil {
		return nil, err
	}

	semester := s.cfg.Semester
	if start, end, ok, err := parseSemesterArgs(args); err != nil {
		return nil, err
	} else if ok {
		semester = &record.SemesterRange{Start: start, End: end}
	}

	now := s.now()
	if raw, _ := args["now"].(string); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("invalid now timestamp %q: %w", raw, err)
		}
		now = parsed
	}

	snapshot := analytics.Analyze(records, analytics.Options{
		Semester: semester,
		Now:      now,
	})
	return snapshot, nil
}

func (s *Server) handleListCourses(args map[string]interface{}) (interface{}, error) {
	records, err := s.loadRecords(args)
	if err != nil {
		return nil, err
	}
	return analytics.CourseDistribution(records), nil
}

// parseSemesterArgs reads the optional semester_start / semester_end
// tool arguments (YYYY-MM-DD). Both must be present to take effect.
func parseSemesterArgs(args map[string]interface{}) (*time.Time, *time.Time, bool, error) {
	startStr, _ := args["semester_start"].(string)
	endStr, _ := args["semester_end"].(string)
	if startStr == "" || endStr == "" {
		return nil, nil, false, nil
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid semester_start %q: %w", startStr, err)
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return nil, nil, false, fmt.Errorf("invalid semester_end %q: %w", endStr, err)
	}
	return &start, &end, true, nil
}
