package api

import "errors"

var (
	// ErrNilConnector signals that a nil staking connector was provided
	ErrNilConnector = errors.New("nil staking connector")

	// ErrNilDelegator signals that a nil staking delegator was provided
	ErrNilDelegator = errors.New("nil staking delegator")

	// ErrNilPriceProvider signals that a nil price provider was provided
	ErrNilPriceProvider = errors.New("nil price provider")

	// ErrNilWSHandler signals that a nil websocket handler was provided
	ErrNilWSHandler = errors.New("nil websocket handler")

	// ErrNilBroadcaster signals that a nil broadcaster was provided
	ErrNilBroadcaster = errors.New("nil broadcaster")

	// ErrNilValidatorRepository signals that a nil validator repository was provided
	ErrNilValidatorRepository = errors.New("nil validator repository")

	// ErrNilReferralRepository signals that a nil referral repository was provided
	ErrNilReferralRepository = errors.New("nil referral repository")

	// ErrNilScreeningRepository signals that a nil screening repository was provided
	ErrNilScreeningRepository = errors.New("nil screening repository")

	// ErrNilDelegationRepository signals that a nil delegation repository was provided
	ErrNilDelegationRepository = errors.New("nil delegation repository")

	// ErrEmptyListenAddress signals that an empty listen address was provided
	ErrEmptyListenAddress = errors.New("empty listen address")

	// ErrEmptyAdminToken signals that an empty admin token was provided
	ErrEmptyAdminToken = errors.New("empty admin token")
)
