package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/warungberkah/storefront/lib/mycontext"
	"github.com/warungberkah/storefront/lib/myerrors"
	"github.com/warungberkah/storefront/lib/myhttp"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mysession"
	"github.com/warungberkah/storefront/lib/mystore"
	"github.com/warungberkah/storefront/lib/mytime"
	"github.com/warungberkah/storefront/lib/myuuid"
)

type webService struct {
	service *service
	uuider  myuuid.UUIDer
	logger  mylog.Logger
}

func NewService(accountStore mystore.Store[Account], sessionStore mystore.Store[Session], nower mytime.Nower, uuider myuuid.UUIDer) *webService {
	logger := mylog.New("auth")
	return &webService{
		service: newService(accountStore, sessionStore, nower, logger),
		uuider:  uuider,
		logger:  logger,
	}
}

func (s *webService) RegisterEndpoints(c context.Context, router *mux.Router) error {
	router.HandleFunc("/api/auth/login", s.loginPage()).Methods("POST")
	router.HandleFunc("/api/auth/logout", s.logoutPage()).Methods("POST")
	router.HandleFunc("/api/auth/profile", s.profilePage()).Methods("GET")
	router.HandleFunc("/api/auth/profile", s.updateProfilePage()).Methods("PUT")

	return s.service.seed(c)
}

func (s *webService) loginPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)
		sessionUID := mysession.UID(w, r, s.uuider)

		request := loginRequest{}
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}
		if request.Email == "" || request.Password == "" {
			responseWriter.WriteError(c, w, 2, myerrors.NewInvalidInputErrorf("missing email or password"))
			return
		}

		user, err := s.service.login(c, sessionUID, request.Email, request.Password)
		if err != nil {
			responseWriter.WriteError(c, w, 3, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, userResponse{
			Success: true,
			User:    user,
		})
	}
}

func (s *webService) logoutPage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)
		sessionUID := mysession.UID(w, r, s.uuider)

		err := s.service.logout(c, sessionUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, myhttp.SuccessResponse{
			Message: "Logged out",
		})
	}
}

func (s *webService) profilePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)
		sessionUID := mysession.UID(w, r, s.uuider)

		user, err := s.service.currentUser(c, sessionUID)
		if err != nil {
			responseWriter.WriteError(c, w, 1, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, userResponse{
			Success: true,
			User:    user,
		})
	}
}

func (s *webService) updateProfilePage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		responseWriter := myhttp.NewWriter(s.logger)
		sessionUID := mysession.UID(w, r, s.uuider)

		request := updateProfileRequest{}
		err := json.NewDecoder(r.Body).Decode(&request)
		if err != nil {
			responseWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		user, err := s.service.updateProfile(c, sessionUID, request)
		if err != nil {
			responseWriter.WriteError(c, w, 2, err)
			return
		}

		responseWriter.Write(c, w, http.StatusOK, userResponse{
			Success: true,
			User:    user,
		})
	}
}
