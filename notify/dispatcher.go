// Package notify is the seam between geofence evaluation and push
// delivery. The evaluator produces zone matches; turning those into
// actual push sends is an external collaborator plugged in behind the
// Dispatcher interface.
package notify

import (
	"context"

	"github.com/pin-point/server-go/models"
	"github.com/sirupsen/logrus"
)

type Dispatcher interface {
	// Dispatch is called once per created pin with the watch zones
	// whose circles contain it. Implementations must not block pin
	// creation on delivery.
	Dispatch(ctx context.Context, pin *models.Pin, zones []models.WatchZone)
}

// LogDispatcher records matches without sending anything. It stands in
// until a real push sender (Expo, FCM) is wired up.
type LogDispatcher struct {
	Log *logrus.Logger
}

func (d *LogDispatcher) Dispatch(_ context.Context, pin *models.Pin, zones []models.WatchZone) {
	for _, zone := range zones {
		d.Log.WithFields(logrus.Fields{
			"pin_id":   pin.ID,
			"category": pin.Category,
			"zone_id":  zone.ID,
			"owner_id": zone.OwnerID,
		}).Info("watch zone matched new pin")
	}
}
