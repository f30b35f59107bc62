package interfaces

import "errors"

// ErrCampaignNotEditable is returned by CampaignRepository.Update when the
// campaign exists but has left the pending status.
var ErrCampaignNotEditable = errors.New("campaign is not editable")
