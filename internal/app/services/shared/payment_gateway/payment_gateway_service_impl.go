package payment_gateway

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type gatewayService struct {
	baseUrl string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewGatewayService builds the provider client. Outbound calls share a
// token-bucket limiter so a burst of bookings cannot trip the provider's
// rate limit.
func NewGatewayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	timeout := time.Duration(internalConfig.PaymentGateway.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	rps := internalConfig.PaymentGateway.RequestsPerSecond
	if rps <= 0 {
		rps = 10
	}
	return &gatewayService{
		baseUrl: internalConfig.PaymentGateway.BaseUrl,
		apiKey:  internalConfig.PaymentGateway.ApiKey,
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		log:     logger,
	}
}

func (s *gatewayService) CreatePaymentLink(ctx context.Context, request *requests.GatewayPaymentLink) (*responses.GatewayPaymentLink, error) {
	requestID := utils.GetRequestID(ctx)
	s.log.Info("gatewayService.CreatePaymentLink called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("external_id", request.ExternalID),
	)

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrGatewaySendRequest(err)
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, constvars.MethodPost, s.baseUrl+"/payment-links", bytes.NewReader(body))
	if err != nil {
		return nil, exceptions.ErrGatewayCreateRequest(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.Header.Set(constvars.HeaderAuthorization, "Bearer "+s.apiKey)

	httpResponse, err := s.client.Do(httpRequest)
	if err != nil {
		return nil, exceptions.ErrGatewaySendRequest(err)
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, exceptions.ErrGatewaySendRequest(err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		return nil, exceptions.ErrGatewayBadResponse(nil, httpResponse.StatusCode)
	}

	response := new(responses.GatewayPaymentLink)
	if err := json.Unmarshal(responseBody, response); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	s.log.Info("gatewayService.CreatePaymentLink succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentLinkIDKey, response.PaymentLinkID),
	)
	return response, nil
}
