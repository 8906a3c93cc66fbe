package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	storeclient "github.com/you-humble/paypal-express/internal/client/http/storeapi/v1"
	"github.com/you-humble/paypal-express/internal/config"
	"github.com/you-humble/paypal-express/internal/converter"
	"github.com/you-humble/paypal-express/internal/document"
	"github.com/you-humble/paypal-express/internal/i18n"
	"github.com/you-humble/paypal-express/internal/navigation"
	"github.com/you-humble/paypal-express/internal/notification"
	pmrepository "github.com/you-humble/paypal-express/internal/repository/paymentmethod"
	"github.com/you-humble/paypal-express/internal/service/cart"
	"github.com/you-humble/paypal-express/internal/service/express"
	notificationsvc "github.com/you-humble/paypal-express/internal/service/notification"
	"github.com/you-humble/paypal-express/internal/service/paymentmethod"
	expressproducer "github.com/you-humble/paypal-express/internal/service/producer/express"
	"github.com/you-humble/paypal-express/internal/service/sdkloader"
	thttp "github.com/you-humble/paypal-express/internal/transport/http/express/v1"
	"github.com/you-humble/paypal-express/platform/closer"
	"github.com/you-humble/paypal-express/platform/kafka"
	"github.com/you-humble/paypal-express/platform/kafka/producer"
	"github.com/you-humble/paypal-express/platform/logger"
)

type StoreClient interface {
	express.SessionContext
	express.ExpressClient
	cart.CartClient
	pmrepository.Client
}

type Translator interface {
	notificationsvc.Translator
	DefaultLocale() string
}

type ExpressHandler interface {
	Register(r chi.Router, defaultLocale string)
}

type di struct {
	storeClient StoreClient
	catalog     paymentmethod.Catalog
	resolver    express.PaymentMethodResolver
	cart        express.CartPreparer

	document  *document.Document
	sdkLoader thttp.SDKLoader

	translator Translator
	reporter   express.FailureReporter
	navigator  express.Router

	syncProducer            sarama.SyncProducer
	expressApprovedProducer kafka.Producer
	conv                    expressproducer.Converter
	expressProducer         express.ApprovedSender

	service thttp.ExpressService
	handler ExpressHandler

	router *chi.Mux
}

func NewDI() *di { return &di{} }

func (d *di) StoreClient(_ context.Context) StoreClient {
	if d.storeClient == nil {
		cfg := config.C()

		httpClient := &http.Client{
			Timeout:   cfg.StoreAPI.Timeout(),
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
		d.storeClient = storeclient.NewClient(httpClient, cfg.StoreAPI.URL(), cfg.StoreAPI.AccessKey())
	}

	return d.storeClient
}

func (d *di) PaymentMethodCatalog(ctx context.Context) paymentmethod.Catalog {
	if d.catalog == nil {
		d.catalog = pmrepository.NewPaymentMethodRepository(
			d.StoreClient(ctx),
			config.C().PayPal.CatalogSize(),
			config.C().PayPal.CatalogTTL(),
		)
	}

	return d.catalog
}

func (d *di) PaymentMethodResolver(ctx context.Context) express.PaymentMethodResolver {
	if d.resolver == nil {
		d.resolver = paymentmethod.NewResolver(d.PaymentMethodCatalog(ctx))
	}

	return d.resolver
}

func (d *di) CartPreparer(ctx context.Context) express.CartPreparer {
	if d.cart == nil {
		d.cart = cart.NewCartPreparer(d.StoreClient(ctx))
	}

	return d.cart
}

func (d *di) Document(_ context.Context) *document.Document {
	if d.document == nil {
		d.document = document.New(
			&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
			config.C().PayPal.SDKFetchTimeout(),
		)
	}

	return d.document
}

func (d *di) SDKLoader(ctx context.Context) thttp.SDKLoader {
	if d.sdkLoader == nil {
		d.sdkLoader = sdkloader.NewLoader(d.Document(ctx), config.C().PayPal.SDKURL())
	}

	return d.sdkLoader
}

func (d *di) Translator(_ context.Context) Translator {
	if d.translator == nil {
		cfg := config.C()

		t, err := i18n.NewTranslator(cfg.I18n.DefaultLocale(), cfg.I18n.MessagesPath())
		if err != nil {
			panic(fmt.Sprintf("failed to load messages: %v\n", err))
		}

		d.translator = t
	}

	return d.translator
}

func (d *di) FailureReporter(ctx context.Context) express.FailureReporter {
	if d.reporter == nil {
		d.reporter = notificationsvc.NewFailureReporter(notification.NewSink(), d.Translator(ctx))
	}

	return d.reporter
}

func (d *di) Navigator(_ context.Context) express.Router {
	if d.navigator == nil {
		d.navigator = navigation.NewRouter()
	}

	return d.navigator
}

func (d *di) SyncProducer(_ context.Context) sarama.SyncProducer {
	if d.syncProducer == nil {
		cfg := config.C()

		p, err := sarama.NewSyncProducer(
			cfg.Kafka.Brokers(),
			cfg.Kafka.ExpressApprovedProducerConfig(),
		)
		if err != nil {
			panic(fmt.Sprintf("failed to create sync producer: %s\n", err.Error()))
		}
		closer.AddNamed("Kafka sync producer", func(ctx context.Context) error {
			return p.Close()
		})

		d.syncProducer = p
	}

	return d.syncProducer
}

func (d *di) ExpressApprovedProducer(ctx context.Context) kafka.Producer {
	if d.expressApprovedProducer == nil {
		if !config.C().Kafka.Enabled() {
			logger.Warn(ctx, "no kafka brokers configured, approved events are dropped")
			d.expressApprovedProducer = producer.Noop{}
			return d.expressApprovedProducer
		}

		d.expressApprovedProducer = producer.NewProducer(
			d.SyncProducer(ctx),
			config.C().Kafka.ExpressApprovedTopic(),
			"application/json",
			logger.L(),
		)
	}

	return d.expressApprovedProducer
}

func (d *di) KafkaConverter(_ context.Context) expressproducer.Converter {
	if d.conv == nil {
		d.conv = converter.NewKafkaConverter()
	}

	return d.conv
}

func (d *di) ExpressProducer(ctx context.Context) express.ApprovedSender {
	if d.expressProducer == nil {
		d.expressProducer = expressproducer.NewExpressProducer(
			d.ExpressApprovedProducer(ctx),
			d.KafkaConverter(ctx),
		)
	}

	return d.expressProducer
}

func (d *di) ExpressService(ctx context.Context) thttp.ExpressService {
	if d.service == nil {
		d.service = express.NewExpressService(
			d.StoreClient(ctx),
			d.PaymentMethodResolver(ctx),
			d.CartPreparer(ctx),
			d.StoreClient(ctx),
			d.Navigator(ctx),
			d.FailureReporter(ctx),
			d.ExpressProducer(ctx),
		)
	}

	return d.service
}

func (d *di) ExpressHandler(ctx context.Context) ExpressHandler {
	if d.handler == nil {
		cfg := config.C()

		d.handler = thttp.NewExpressHandler(
			d.ExpressService(ctx),
			d.SDKLoader(ctx),
			d.PaymentMethodResolver(ctx),
			d.StoreClient(ctx),
			cfg.PayPal.ClientID(),
			cfg.PayPal.SDKReadyTimeout(),
			cfg.PayPal.SingleFlight(),
		)
	}

	return d.handler
}

func (d *di) Router(_ context.Context) *chi.Mux {
	if d.router == nil {
		d.router = chi.NewRouter()
	}

	return d.router
}
