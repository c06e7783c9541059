package services

import (
	"errors"
	"net/http"
)

// ErrRemoteDisabled is returned when a remote-only operation runs without a remote source
var ErrRemoteDisabled = errors.New("remote nutrient source disabled")

// Kind classifies failures of an analysis request
type Kind string

const (
	KindValidation        Kind = "validation"
	KindUpstreamAuth      Kind = "upstream_auth"
	KindRateLimited       Kind = "rate_limited"
	KindPayloadTooLarge   Kind = "payload_too_large"
	KindUpstream          Kind = "upstream"
	KindMalformedResponse Kind = "malformed_response"
	KindNoFoods           Kind = "no_foods"
	KindNotConfigured     Kind = "not_configured"
)

// HTTPStatus maps validation failures to 400 and everything else to 500
func (k Kind) HTTPStatus() int {
	if k == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// User-facing messages
const (
	MsgMissingInput        = "Forneça uma imagem ou descrição da refeição"
	MsgInvalidImageFormat  = "Formato de imagem inválido. Use uma imagem JPG ou PNG"
	MsgImageTooLarge       = "Imagem muito grande. Use uma foto menor que 20MB"
	MsgInvalidDescription  = "Descrição inválida. Por favor, descreva sua refeição"
	MsgUpstreamAuth        = "Chave da API OpenAI inválida ou expirada"
	MsgRateLimited         = "Limite de requisições atingido. Tente novamente em alguns minutos"
	MsgImagePayload        = "Imagem inválida ou muito grande. Tente uma foto menor"
	MsgDescriptionPayload  = "Descrição inválida ou muito longa"
	MsgMalformedResponse   = "Erro ao processar resposta da IA. Tente novamente"
	MsgNoFoods             = "Não foi possível identificar alimentos na descrição"
	MsgNotConfigured       = "Chave da API OpenAI não configurada"
	MsgUpstream            = "Erro da OpenAI. Tente novamente"
	MsgMissingQuery        = `Parâmetro "query" é obrigatório`
	MsgMissingFoodName     = `Parâmetro "foodName" é obrigatório`
	MsgNoFoodFound         = "Nenhum alimento encontrado"
	MsgNutrientsNotFound   = "Não foi possível obter nutrientes para este alimento"
	MsgRemoteNotConfigured = "Fonte de nutrientes remota não configurada"
)

// AnalysisError carries a Kind, a user-facing message and the underlying cause
type AnalysisError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AnalysisError) Unwrap() error { return e.Err }

func newAnalysisError(kind Kind, msg string, err error) *AnalysisError {
	return &AnalysisError{Kind: kind, Message: msg, Err: err}
}

// ValidationError builds a 400-class error with the given message
func ValidationError(msg string) *AnalysisError {
	return newAnalysisError(KindValidation, msg, nil)
}

// AsAnalysisError unwraps err into an AnalysisError when it carries one
func AsAnalysisError(err error) (*AnalysisError, bool) {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
