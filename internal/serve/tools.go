package serve

func (s *Server) listTools() interface{} {
	return map[string]interface{}{
		"tools": []interface{}{
			map[string]interface{}{
				"name":        "analyze_submissions",
				"description": "Compute the full submission analytics snapshot (rates, distributions, trend, heatmaps, streaks, deadline risk, procrastination profile) from the user's assignment history.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"records_path":   map[string]interface{}{"type": "string", "description": "Optional path to a JSONL record file; defaults to the configured store"},
						"semester_start": map[string]interface{}{"type": "string", "description": "Optional semester start date (YYYY-MM-DD), used only as a trend-window hint"},
						"semester_end":   map[string]interface{}{"type": "string", "description": "Optional semester end date (YYYY-MM-DD)"},
						"now":            map[string]interface{}{"type": "string", "description": "Optional RFC3339 reference time for deadline-risk scoring; defaults to the current time"},
					},
				},
			},
			map[string]interface{}{
				"name":        "list_courses",
				"description": "List per-course assignment totals and submitted counts, sorted by submitted count descending.",
				"inputSchema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"records_path": map[string]interface{}{"type": "string", "description": "Optional path to a JSONL record file; defaults to the configured store"},
					},
				},
			},
		},
	}
}
