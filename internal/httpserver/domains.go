package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	bookingHTTP "github.com/msshishlin/shareit/internal/booking/delivery/http"
	bookingRepo "github.com/msshishlin/shareit/internal/booking/repository"
	bookingInmem "github.com/msshishlin/shareit/internal/booking/repository/inmem"
	bookingPG "github.com/msshishlin/shareit/internal/booking/repository/postgre"
	bookingUC "github.com/msshishlin/shareit/internal/booking/usecase"
	itemHTTP "github.com/msshishlin/shareit/internal/item/delivery/http"
	itemRepo "github.com/msshishlin/shareit/internal/item/repository"
	itemInmem "github.com/msshishlin/shareit/internal/item/repository/inmem"
	itemPG "github.com/msshishlin/shareit/internal/item/repository/postgre"
	itemUC "github.com/msshishlin/shareit/internal/item/usecase"
	"github.com/msshishlin/shareit/internal/middleware"
	requestHTTP "github.com/msshishlin/shareit/internal/request/delivery/http"
	requestRepo "github.com/msshishlin/shareit/internal/request/repository"
	requestInmem "github.com/msshishlin/shareit/internal/request/repository/inmem"
	requestPG "github.com/msshishlin/shareit/internal/request/repository/postgre"
	requestUC "github.com/msshishlin/shareit/internal/request/usecase"
	userHTTP "github.com/msshishlin/shareit/internal/user/delivery/http"
	userRepo "github.com/msshishlin/shareit/internal/user/repository"
	userInmem "github.com/msshishlin/shareit/internal/user/repository/inmem"
	userPG "github.com/msshishlin/shareit/internal/user/repository/postgre"
	userUC "github.com/msshishlin/shareit/internal/user/usecase"
)

// repositories bundles the per-domain stores. The domains cross-reference
// each other (a booking resolves its item and booker, an item request
// resolves the items answering it), so all stores are built up front.
type repositories struct {
	users    userRepo.Repository
	items    itemRepo.Repository
	bookings bookingRepo.Repository
	requests requestRepo.Repository
}

// buildRepositories selects the PostgreSQL stores when a database is
// configured and the in-memory stores otherwise.
func (srv *HTTPServer) buildRepositories() repositories {
	if srv.db != nil {
		return repositories{
			users:    userPG.New(srv.db, srv.l),
			items:    itemPG.New(srv.db, srv.l),
			bookings: bookingPG.New(srv.db, srv.l),
			requests: requestPG.New(srv.db, srv.l),
		}
	}

	users := userInmem.New()
	items := itemInmem.New(users)
	return repositories{
		users:    users,
		items:    items,
		bookings: bookingInmem.New(users, items),
		requests: requestInmem.New(users),
	}
}

// registerDomainRoutes wires repositories, use cases and HTTP handlers
// for every domain and registers their routes.
func (srv *HTTPServer) registerDomainRoutes(mw middleware.Middleware) error {
	ctx := context.Background()
	root := srv.gin.Group("/")
	repos := srv.buildRepositories()

	srv.setupUserDomain(ctx, root, repos)
	srv.setupItemDomain(ctx, root, repos, mw)
	srv.setupBookingDomain(ctx, root, repos, mw)
	srv.setupRequestDomain(ctx, root, repos, mw)

	return nil
}

func (srv *HTTPServer) setupUserDomain(ctx context.Context, rg *gin.RouterGroup, repos repositories) {
	uc := userUC.New(repos.users, srv.l)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(rg, h)

	srv.l.Infof(ctx, "User domain registered")
}

func (srv *HTTPServer) setupItemDomain(ctx context.Context, rg *gin.RouterGroup, repos repositories, mw middleware.Middleware) {
	uc := itemUC.New(repos.items, repos.users, repos.bookings, srv.l)
	h := itemHTTP.New(srv.l, uc)
	itemHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
}

func (srv *HTTPServer) setupBookingDomain(ctx context.Context, rg *gin.RouterGroup, repos repositories, mw middleware.Middleware) {
	uc := bookingUC.New(repos.bookings, repos.users, repos.items, srv.l)
	h := bookingHTTP.New(srv.l, uc)
	bookingHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Booking domain registered")
}

func (srv *HTTPServer) setupRequestDomain(ctx context.Context, rg *gin.RouterGroup, repos repositories, mw middleware.Middleware) {
	uc := requestUC.New(repos.requests, repos.users, repos.items, srv.l)
	h := requestHTTP.New(srv.l, uc)
	requestHTTP.RegisterRoutes(rg, h, mw)

	srv.l.Infof(ctx, "Request domain registered")
}
