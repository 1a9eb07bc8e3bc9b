package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Códigos de erro da aplicação
const (
	CodeSuccess           = 0
	CodeParamError        = 1000
	CodeAuthFailed        = 1001
	CodePermissionDenied  = 1002
	CodeResourceNotFound  = 1003
	CodeEntitlementDenied = 1004
	CodeDuplicateAction   = 1005
	CodeConflict          = 1006
	CodeServerError       = 5000
)

// Mensagens padrão por código
var codeMessages = map[int]string{
	CodeSuccess:           "success",
	CodeParamError:        "Parâmetros inválidos",
	CodeAuthFailed:        "Falha na autenticação",
	CodePermissionDenied:  "Permissão negada",
	CodeResourceNotFound:  "Recurso não encontrado",
	CodeEntitlementDenied: "Nenhum plano ativo permite esta ação",
	CodeDuplicateAction:   "Operação duplicada",
	CodeConflict:          "Registro alterado por outra operação, tente novamente",
	CodeServerError:       "Erro interno do servidor",
}

// Response estrutura unificada de resposta
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageData estrutura de paginação
type PageData struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Items    interface{} `json:"items"`
}

// Success resposta de sucesso
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data:    data,
	})
}

// SuccessWithMessage sucesso com mensagem customizada
func SuccessWithMessage(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: message,
		Data:    data,
	})
}

// SuccessPage sucesso paginado
func SuccessPage(c *gin.Context, total int64, page, pageSize int, items interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    CodeSuccess,
		Message: "success",
		Data: PageData{
			Total:    total,
			Page:     page,
			PageSize: pageSize,
			Items:    items,
		},
	})
}

// Error resposta de erro
func Error(c *gin.Context, code int, message string) {
	if message == "" {
		message = codeMessages[code]
	}
	c.JSON(http.StatusOK, Response{
		Code:    code,
		Message: message,
		Data:    nil,
	})
}

// ParamError parâmetros inválidos
func ParamError(c *gin.Context, message string) {
	Error(c, CodeParamError, message)
}

// AuthError falha de autenticação
func AuthError(c *gin.Context, message string) {
	Error(c, CodeAuthFailed, message)
}

// PermissionError permissão negada
func PermissionError(c *gin.Context, message string) {
	Error(c, CodePermissionDenied, message)
}

// NotFoundError recurso não encontrado
func NotFoundError(c *gin.Context, message string) {
	Error(c, CodeResourceNotFound, message)
}

// EntitlementError sem direito de postagem: resultado normal, não exceção
func EntitlementError(c *gin.Context, message string) {
	Error(c, CodeEntitlementDenied, message)
}

// DuplicateError operação duplicada
func DuplicateError(c *gin.Context, message string) {
	Error(c, CodeDuplicateAction, message)
}

// ConflictError conflito de escrita concorrente; o cliente deve reler e repetir
func ConflictError(c *gin.Context, message string) {
	Error(c, CodeConflict, message)
}

// ServerError erro interno
func ServerError(c *gin.Context, message string) {
	Error(c, CodeServerError, message)
}
