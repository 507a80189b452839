package request

// CriarSolicitacaoRequest opens a documentation request for an OS. The
// lancamentoIds list ties the request back to the monolith entries whose
// documentation status follows this request's lifecycle.
type CriarSolicitacaoRequest struct {
	OSID           int64   `json:"osId" binding:"required"`
	DocumentoID    string  `json:"documentoId" binding:"required"`
	DocumentistaID int64   `json:"documentistaId" binding:"required"`
	Comentario     string  `json:"comentario"`
	LancamentoIDs  []int64 `json:"lancamentoIds"`
}

type AcaoSolicitacaoRequest struct {
	Comentario string `json:"comentario"`
}

type FinalizarSolicitacaoRequest struct {
	Comentario string `json:"comentario"`
	ProvaEnvio string `json:"provaEnvio"`
}

type ComentarSolicitacaoRequest struct {
	Comentario string `json:"comentario" binding:"required"`
}
