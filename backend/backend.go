package backend

import (
	"os/user"

	"github.com/quibble-tools/quibble/api"
	"github.com/quibble-tools/quibble/backend/internal/database"
	"github.com/quibble-tools/quibble/backend/internal/image"
	"github.com/quibble-tools/quibble/backend/internal/matcher"
	"github.com/quibble-tools/quibble/backend/internal/relay"
	"github.com/quibble-tools/quibble/backend/internal/section"
	"github.com/quibble-tools/quibble/common"
	"github.com/quibble-tools/quibble/common/constants"
	"github.com/quibble-tools/quibble/common/event"
	"github.com/quibble-tools/quibble/common/logger"
)

type Stores struct {
	*database.Stores

	db *database.Database
}

func (s *Stores) Close() {
	s.db.Close()
}

type Services struct {
	SectionService api.SectionService
	ImageService   api.ImageService
	OverlayService api.OverlayService
	RelayServer    *relay.Server
}

func (s *Services) Close() {
	defer s.SectionService.Close()
	defer s.ImageService.Close()
	defer s.OverlayService.Close()
	defer s.RelayServer.Stop()
}

type Brokers struct {
	Broker *event.Broker
}

func InitializeEventBrokers(eventBusQueueSize int) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	brokers := &Brokers{
		Broker: event.InitBus(eventBusQueueSize),
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the registry database. It lives under the
// user's home directory unless params point elsewhere.
func InitializeStores(params *common.Params) *Stores {
	logger.Debug.Printf("Initialize database...")

	dataDir := params.DataDir()
	if dataDir == "" {
		currentUser, err := user.Current()
		if err != nil {
			logger.Error.Fatal("Cannot load user")
		}
		dataDir = currentUser.HomeDir
	}

	db := database.NewDatabase()
	if err := db.InitializeForDirectory(dataDir, constants.DatabaseFileName); err != nil {
		logger.Error.Fatal("Error opening database ", err)
	}
	db.Migrate()

	logger.Debug.Printf("Stores and database initialized")
	return &Stores{
		Stores: database.NewStores(db),
		db:     db,
	}
}

func InitializeServices(params *common.Params, stores *Stores, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")

	sectionService := section.NewSectionService(brokers.Broker, stores.Stores)
	imageService := image.NewImageService(brokers.Broker, stores.Stores)
	overlayService := matcher.NewOverlayService(brokers.Broker, sectionService, imageService, stores.Stores)
	relayServer := relay.NewServer(brokers.Broker, overlayService)

	services := &Services{
		SectionService: sectionService,
		ImageService:   imageService,
		OverlayService: overlayService,
		RelayServer:    relayServer,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// ConnectServices subscribes the services to the topics that drive
// them. The width selection re-runs on viewport changes, section
// activation and any image mutation.
func ConnectServices(brokers *Brokers, services *Services) {
	brokers.Broker.Subscribe(api.ViewportChanged, services.OverlayService.OnViewportReport)
	brokers.Broker.Subscribe(api.SectionActivated, services.OverlayService.OnSectionActivated)
	brokers.Broker.Subscribe(api.ImagesUpdated, services.OverlayService.OnImagesUpdated)
	brokers.Broker.Subscribe(api.OverlayStateChanged, services.RelayServer.OnOverlayStateChanged)
}
