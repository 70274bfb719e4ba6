package core

import (
	"bytes"
	"context"
	"fmt"
	"net/http/cookiejar"
	"net/url"
	"sidco-backend/lib/restyutil"
	"sidco-backend/lib/telemetry"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

// BaseUrl is the fixed origin of the SIDCO portal. Relative hrefs scraped
// from its pages are resolved against it.
const BaseUrl = "https://sidco.conaf.cl"

var MissingCredentials = fmt.Errorf("missing SIDCO username and/or password")
var LoginFailed = fmt.Errorf("Failed to login to SIDCO.")

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to BaseUrl when empty
	BaseUrl string
}

func NewClient(ctx context.Context, opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = BaseUrl
	}
	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	telemetry.InstrumentResty(client, "scrapers/sidco/http")
	restyutil.InstrumentClient(client, tracer, restyInstrumentOutput)

	c := &Client{
		BaseUrl: baseUrl,
		Http:    client,
	}
	return c, nil
}

func (c *Client) LoginUsernamePassword(ctx context.Context, username, password string) error {
	ctx, span := tracer.Start(ctx, "client:LoginUsernamePassword")
	defer span.End()

	if username == "" || password == "" {
		span.SetStatus(codes.Error, MissingCredentials.Error())
		return MissingCredentials
	}

	// warms up the session cookie the portal expects before it will
	// accept the credentials
	_, err := c.Http.R().
		SetContext(ctx).
		Get("/login/index.php")
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch login page")
		return err
	}

	_, err = c.Http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		Post("/login/index.php")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to make login request")
		return err
	}

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/principal.php")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to request main page after login")
		return err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse main page html")
		return err
	}

	// still being served the login form means the portal rejected us
	if len(doc.Find("input[name=username]").Nodes) > 0 {
		span.SetStatus(codes.Error, LoginFailed.Error())
		return LoginFailed
	}

	return nil
}

// ListingPage fetches the main page carrying the active fires table.
func (c *Client) ListingPage(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "client:ListingPage")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get("/principal.php")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return res.String(), nil
}

// Page fetches an absolute url on the portal, e.g. a ficha link taken
// from the listing.
func (c *Client) Page(ctx context.Context, link string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:Page")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	return res.String(), nil
}
