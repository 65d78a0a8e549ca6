package client

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode"

	"orderdelivery/internal/core/domain/model/kernel"
	"orderdelivery/internal/pkg/errs"
)

var (
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
)

const taxIDDigits = 11

// Profile holds the mutable attributes of a client.
type Profile struct {
	FullName string
	TaxID    string
	Phone    string
	Email    string
	Address  string
}

// Client is a registered customer. The tax ID (CPF) is unique across clients and
// is stored as digits only.
type Client struct {
	id       kernel.UUID
	fullName string
	taxID    string
	phone    string
	email    string
	address  string

	isConstructed bool
}

// NewClient validates profile and creates a client. Full name, tax ID and address
// are required; phone and email are optional.
func NewClient(id kernel.UUID, profile Profile) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.apply(profile),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Update replaces the profile. The client is left untouched when validation fails.
func (c *Client) Update(profile Profile) error {
	next := *c
	if err := next.apply(profile); err != nil {
		return err
	}
	*c = next
	return nil
}

func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) FullName() string {
	return c.fullName
}

func (c *Client) TaxID() string {
	return c.taxID
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) apply(p Profile) error {
	return errors.Join(
		c.setFullName(p.FullName),
		c.setTaxID(p.TaxID),
		c.setEmail(p.Email),
		c.setAddress(p.Address),
		c.setPhone(p.Phone),
	)
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("fullName")
	}
	c.fullName = name
	return nil
}

func (c *Client) setTaxID(taxID string) error {
	normalized, err := NormalizeTaxID(taxID)
	if err != nil {
		return err
	}
	c.taxID = normalized
	return nil
}

func (c *Client) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}
	c.email = email
	return nil
}

func (c *Client) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *Client) setPhone(phone string) error {
	c.phone = strings.TrimSpace(phone)
	return nil
}

// NormalizeTaxID strips punctuation from a CPF and checks it has 11 digits.
func NormalizeTaxID(taxID string) (string, error) {
	if strings.TrimSpace(taxID) == "" {
		return "", errs.NewValueIsRequiredError("taxID")
	}

	var b strings.Builder
	for _, r := range taxID {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '/' || unicode.IsSpace(r):
		default:
			return "", errs.NewValueIsInvalidErrorWithCause("taxID", fmt.Errorf("unexpected character %q", r))
		}
	}

	digits := b.String()
	if len(digits) != taxIDDigits {
		return "", errs.NewValueIsInvalidErrorWithCause(
			"taxID",
			fmt.Errorf("%d digits given, %d expected", len(digits), taxIDDigits),
		)
	}
	return digits, nil
}
