package creds

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/PGRjoystick/baileys-redis-auth/bufferjson"
)

// AccountSettings holds per-account behavior toggles synced by the client.
type AccountSettings struct {
	UnarchiveChats bool `json:"unarchiveChats"`
}

// Contact identifies the account owner once the client has paired.
type Contact struct {
	ID           string `json:"id"`
	LID          string `json:"lid,omitempty"`
	Name         string `json:"name,omitempty"`
	Notify       string `json:"notify,omitempty"`
	VerifiedName string `json:"verifiedName,omitempty"`
	ImgURL       string `json:"imgUrl,omitempty"`
	Status       string `json:"status,omitempty"`
}

// Account is the signed device identity issued by the server at pairing.
type Account struct {
	Details             bufferjson.Buffer `json:"details,omitempty"`
	AccountSignatureKey bufferjson.Buffer `json:"accountSignatureKey,omitempty"`
	AccountSignature    bufferjson.Buffer `json:"accountSignature,omitempty"`
	DeviceSignature     bufferjson.Buffer `json:"deviceSignature,omitempty"`
}

// ProtocolAddress names a remote device in the signal layer.
type ProtocolAddress struct {
	Name        string `json:"name"`
	DeviceIndex int    `json:"deviceIndex"`
}

// SignalIdentity pins the identity key of a remote device.
type SignalIdentity struct {
	Identifier    ProtocolAddress   `json:"identifier"`
	IdentifierKey bufferjson.Buffer `json:"identifierKey"`
}

// MessageKey identifies one message within a chat.
type MessageKey struct {
	RemoteJID   string `json:"remoteJid,omitempty"`
	FromMe      bool   `json:"fromMe,omitempty"`
	ID          string `json:"id,omitempty"`
	Participant string `json:"participant,omitempty"`
}

// HistoryMessageRef marks a history sync notification as already processed.
type HistoryMessageRef struct {
	Key              MessageKey `json:"key"`
	MessageTimestamp int64      `json:"messageTimestamp"`
}

// RegistrationOptions carries phone-number registration parameters for
// clients that register over the companion API instead of QR pairing.
type RegistrationOptions struct {
	PhoneNumber                  string `json:"phoneNumber,omitempty"`
	PhoneNumberCountryCode       string `json:"phoneNumberCountryCode,omitempty"`
	PhoneNumberNationalNumber    string `json:"phoneNumberNationalNumber,omitempty"`
	PhoneNumberMobileCountryCode string `json:"phoneNumberMobileCountryCode,omitempty"`
	PhoneNumberMobileNetworkCode string `json:"phoneNumberMobileNetworkCode,omitempty"`
	Method                       string `json:"method,omitempty"`
	Captcha                      string `json:"captcha,omitempty"`
}

// Creds is the long-lived credential bundle for one session. The protocol
// client mutates it in memory as pairing and sync progress; persistence is
// the store's job.
type Creds struct {
	NoiseKey                 KeyPair             `json:"noiseKey"`
	PairingEphemeralKeyPair  KeyPair             `json:"pairingEphemeralKeyPair"`
	SignedIdentityKey        KeyPair             `json:"signedIdentityKey"`
	SignedPreKey             SignedKeyPair       `json:"signedPreKey"`
	RegistrationID           uint32              `json:"registrationId"`
	AdvSecretKey             string              `json:"advSecretKey"`
	ProcessedHistoryMessages []HistoryMessageRef `json:"processedHistoryMessages"`
	NextPreKeyID             uint32              `json:"nextPreKeyId"`
	FirstUnuploadedPreKeyID  uint32              `json:"firstUnuploadedPreKeyId"`
	AccountSyncCounter       uint32              `json:"accountSyncCounter"`
	AccountSettings          AccountSettings     `json:"accountSettings"`
	DeviceID                 string              `json:"deviceId"`
	PhoneID                  string              `json:"phoneId"`
	IdentityID               bufferjson.Buffer   `json:"identityId"`
	BackupToken              bufferjson.Buffer   `json:"backupToken"`
	Registered               bool                `json:"registered"`
	Registration             RegistrationOptions `json:"registration"`
	PairingCode              string              `json:"pairingCode,omitempty"`
	LastPropHash             string              `json:"lastPropHash,omitempty"`
	RoutingInfo              bufferjson.Buffer   `json:"routingInfo,omitempty"`

	Me                       *Contact         `json:"me,omitempty"`
	Account                  *Account         `json:"account,omitempty"`
	SignalIdentities         []SignalIdentity `json:"signalIdentities,omitempty"`
	Platform                 string           `json:"platform,omitempty"`
	MyAppStateKeyID          string           `json:"myAppStateKeyId,omitempty"`
	LastAccountSyncTimestamp int64            `json:"lastAccountSyncTimestamp,omitempty"`
}

// New initializes a fresh credential bundle with the defaults the client
// generates on first pairing: fresh key material, a 14-bit registration id,
// and randomized device identifiers.
func New() (*Creds, error) {
	identity, err := NewKeyPair()
	if err != nil {
		return nil, err
	}
	noise, err := NewKeyPair()
	if err != nil {
		return nil, err
	}
	pairingEphemeral, err := NewKeyPair()
	if err != nil {
		return nil, err
	}
	signedPreKey, err := NewSignedKeyPair(identity, 1)
	if err != nil {
		return nil, err
	}

	registrationID, err := newRegistrationID()
	if err != nil {
		return nil, err
	}
	advSecret, err := randomBytes(32)
	if err != nil {
		return nil, err
	}
	identityID, err := randomBytes(20)
	if err != nil {
		return nil, err
	}
	backupToken, err := randomBytes(20)
	if err != nil {
		return nil, err
	}

	device := uuid.New()

	return &Creds{
		NoiseKey:                 noise,
		PairingEphemeralKeyPair:  pairingEphemeral,
		SignedIdentityKey:        identity,
		SignedPreKey:             signedPreKey,
		RegistrationID:           registrationID,
		AdvSecretKey:             base64.StdEncoding.EncodeToString(advSecret),
		ProcessedHistoryMessages: []HistoryMessageRef{},
		NextPreKeyID:             1,
		FirstUnuploadedPreKeyID:  1,
		AccountSettings:          AccountSettings{UnarchiveChats: false},
		DeviceID:                 base64.RawURLEncoding.EncodeToString(device[:]),
		PhoneID:                  uuid.NewString(),
		IdentityID:               identityID,
		BackupToken:              backupToken,
	}, nil
}

// newRegistrationID draws a random 14-bit registration identifier.
func newRegistrationID() (uint32, error) {
	var b [2]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}
	return uint32(binary.BigEndian.Uint16(b[:]) & 0x3FFF), nil
}

func randomBytes(n int) (bufferjson.Buffer, error) {
	out := make(bufferjson.Buffer, n)
	if _, err := rand.Read(out); err != nil {
		return nil, err
	}
	return out, nil
}
