package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/warungberkah/storefront/lib/myerrors"
	"github.com/warungberkah/storefront/lib/mylog"
	"github.com/warungberkah/storefront/lib/mystore"
	"github.com/warungberkah/storefront/lib/mytime"
)

type service struct {
	accountStore mystore.Store[Account]
	sessionStore mystore.Store[Session]
	nower        mytime.Nower
	logger       mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(accountStore mystore.Store[Account], sessionStore mystore.Store[Session], nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		accountStore: accountStore,
		sessionStore: sessionStore,
		nower:        nower,
		logger:       logger,
	}
}

func (s *service) seed(c context.Context) error {
	for _, account := range seedAccounts {
		err := s.accountStore.Put(c, account.User.UID, account)
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *service) login(c context.Context, sessionUID string, email string, password string) (User, error) {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Login attempt for %s", email)

	accounts, err := s.accountStore.List(c)
	if err != nil {
		return User{}, myerrors.NewInternalError(err)
	}

	for _, account := range accounts {
		if strings.EqualFold(account.User.Email, email) && account.Password == password {
			err = s.sessionStore.Put(c, sessionUID, Session{
				UID:       sessionUID,
				UserUID:   account.User.UID,
				CreatedAt: s.nower.Now(),
			})
			if err != nil {
				return User{}, myerrors.NewInternalError(err)
			}

			return account.User, nil
		}
	}

	return User{}, myerrors.NewAuthenticationError(fmt.Errorf("invalid email or password"))
}

func (s *service) logout(c context.Context, sessionUID string) error {
	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Logout of session %s", sessionUID)

	// An empty UserUID marks the session as logged out
	err := s.sessionStore.Put(c, sessionUID, Session{
		UID:       sessionUID,
		CreatedAt: s.nower.Now(),
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}

func (s *service) currentUser(c context.Context, sessionUID string) (User, error) {
	session, found, err := s.sessionStore.Get(c, sessionUID)
	if err != nil {
		return User{}, myerrors.NewInternalError(err)
	}
	if !found || session.UserUID == "" {
		return User{}, myerrors.NewAuthenticationError(fmt.Errorf("not logged in"))
	}

	account, found, err := s.accountStore.Get(c, session.UserUID)
	if err != nil {
		return User{}, myerrors.NewInternalError(err)
	}
	if !found {
		return User{}, myerrors.NewAuthenticationError(fmt.Errorf("unknown user %s", session.UserUID))
	}

	return account.User, nil
}

func (s *service) updateProfile(c context.Context, sessionUID string, update updateProfileRequest) (User, error) {
	user, err := s.currentUser(c, sessionUID)
	if err != nil {
		return User{}, err
	}

	s.logger.Log(c, sessionUID, mylog.SeverityInfo, "Updating profile of user %s", user.UID)

	if update.Name != "" {
		user.Name = update.Name
	}
	user.Phone = update.Phone
	user.Address = update.Address

	account, _, err := s.accountStore.Get(c, user.UID)
	if err != nil {
		return User{}, myerrors.NewInternalError(err)
	}
	account.User = user

	err = s.accountStore.Put(c, user.UID, account)
	if err != nil {
		return User{}, myerrors.NewInternalError(err)
	}

	return user, nil
}
