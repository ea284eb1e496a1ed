package grist

// Fields holds one record's column values keyed by column id.
type Fields map[string]any

// Record is a stored record as returned by the records endpoints.
type Record struct {
	ID     int64  `json:"id"`
	Fields Fields `json:"fields"`
}

// RecordUpdate is a partial update addressed by record id.
type RecordUpdate struct {
	ID     int64  `json:"id"`
	Fields Fields `json:"fields"`
}

type Column struct {
	ID string `json:"id"`
}

type columnsResponse struct {
	Columns []Column `json:"columns"`
}

type recordsResponse struct {
	Records []Record `json:"records"`
}

type insertRecord struct {
	Fields Fields `json:"fields"`
}

type insertRequest struct {
	Records []insertRecord `json:"records"`
}

type patchRequest struct {
	Records []RecordUpdate `json:"records"`
}
