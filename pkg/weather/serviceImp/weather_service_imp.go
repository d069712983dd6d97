package serviceImp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"silvacollect/apperr"
	"silvacollect/config"
	"silvacollect/entities"
	"silvacollect/pkg/weather/service"
)

const snapshotKey uint = 1

// wmoCodes maps WMO weather codes to a display icon and description.
var wmoCodes = map[int]struct {
	Icon string
	Desc string
}{
	0:  {"☀️", "Céu limpo"},
	1:  {"🌤️", "Principalmente limpo"},
	2:  {"⛅", "Parcialmente nublado"},
	3:  {"☁️", "Nublado"},
	45: {"🌫️", "Neblina"},
	48: {"🌫️", "Nevoeiro"},
	51: {"🌦️", "Garoa leve"},
	53: {"🌦️", "Garoa moderada"},
	55: {"🌦️", "Garoa densa"},
	61: {"🌧️", "Chuva leve"},
	63: {"🌧️", "Chuva moderada"},
	65: {"🌧️", "Chuva forte"},
	80: {"🌧️", "Pancadas leves"},
	81: {"🌧️", "Pancadas moderadas"},
	82: {"🌧️", "Pancadas fortes"},
	95: {"⛈️", "Trovoada"},
	96: {"⛈️", "Trovoada com granizo"},
	99: {"⛈️", "Trovoada forte"},
}

type Options struct {
	Lat          float64
	Lon          float64
	City         string
	State        string
	CacheTTL     time.Duration
	Timeout      time.Duration
	OpenMeteoURL string // override for tests; defaults to the public API
	WttrURL      string
}

type weatherSvc struct {
	db     *gorm.DB
	opts   Options
	http   *http.Client
	logger *logrus.Logger
}

func New(db *gorm.DB, opts Options, logger *logrus.Logger) service.WeatherService {
	if opts.OpenMeteoURL == "" {
		opts.OpenMeteoURL = "https://api.open-meteo.com"
	}
	if opts.WttrURL == "" {
		opts.WttrURL = "https://wttr.in"
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 15 * time.Minute
	}
	if opts.Timeout == 0 {
		opts.Timeout = 5 * time.Second
	}
	return &weatherSvc{db: db, opts: opts, http: &http.Client{}, logger: logger}
}

func (s *weatherSvc) Current(ctx context.Context) (*entities.WeatherSnapshot, error) {
	cached, _ := s.load()
	if cached != nil && time.Since(cached.FetchedAt) < s.opts.CacheTTL {
		return cached, nil
	}

	snap, err := s.tryOpenMeteo(ctx)
	if err != nil {
		config.LogError(s.logger, "weather", "Current", "open-meteo", nil, err)
		snap, err = s.tryWttr(ctx)
	}
	if err != nil {
		config.LogError(s.logger, "weather", "Current", "wttr.in", nil, err)
		if cached != nil {
			// expired cache beats nothing
			return cached, nil
		}
		return nil, apperr.Network("weather", errors.New("all providers failed"))
	}

	if err := s.save(snap); err != nil {
		config.LogError(s.logger, "weather", "Current", "save snapshot", nil, err)
	}
	return snap, nil
}

func (s *weatherSvc) load() (*entities.WeatherSnapshot, error) {
	var snap entities.WeatherSnapshot
	if err := s.db.First(&snap, snapshotKey).Error; err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *weatherSvc) save(snap *entities.WeatherSnapshot) error {
	snap.ID = snapshotKey
	return s.db.Save(snap).Error
}

type openMeteoResponse struct {
	CurrentWeather struct {
		Temperature float64 `json:"temperature"`
		WeatherCode int     `json:"weathercode"`
	} `json:"current_weather"`
}

func (s *weatherSvc) tryOpenMeteo(ctx context.Context) (*entities.WeatherSnapshot, error) {
	url := fmt.Sprintf("%s/v1/forecast?latitude=%g&longitude=%g&current_weather=true&timezone=America/Sao_Paulo",
		s.opts.OpenMeteoURL, s.opts.Lat, s.opts.Lon)

	var parsed openMeteoResponse
	if err := s.fetch(ctx, url, &parsed); err != nil {
		return nil, err
	}
	wmo, ok := wmoCodes[parsed.CurrentWeather.WeatherCode]
	if !ok {
		wmo = wmoCodes[0]
	}
	return &entities.WeatherSnapshot{
		Temperature: int(math.Round(parsed.CurrentWeather.Temperature)),
		Condition:   wmo.Desc,
		Icon:        wmo.Icon,
		Location:    s.opts.City + ", " + s.opts.State,
		Source:      "open-meteo",
		FetchedAt:   time.Now(),
	}, nil
}

type wttrResponse struct {
	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`
}

func (s *weatherSvc) tryWttr(ctx context.Context) (*entities.WeatherSnapshot, error) {
	url := fmt.Sprintf("%s/%g,%g?format=j1", s.opts.WttrURL, s.opts.Lat, s.opts.Lon)

	var parsed wttrResponse
	if err := s.fetch(ctx, url, &parsed); err != nil {
		return nil, err
	}
	if len(parsed.CurrentCondition) == 0 {
		return nil, errors.New("wttr.in: empty current_condition")
	}
	cur := parsed.CurrentCondition[0]
	temp, _ := strconv.Atoi(cur.TempC)
	desc := ""
	if len(cur.WeatherDesc) > 0 {
		desc = cur.WeatherDesc[0].Value
	}
	return &entities.WeatherSnapshot{
		Temperature: temp,
		Condition:   desc,
		Icon:        "🌤️",
		Location:    s.opts.City + ", " + s.opts.State,
		Source:      "wttr.in",
		FetchedAt:   time.Now(),
	}, nil
}

// fetch runs one GET under the provider timeout; the context cancel is the
// abort signal.
func (s *weatherSvc) fetch(ctx context.Context, url string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
