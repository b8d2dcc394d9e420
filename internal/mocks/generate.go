package mocks

//go:generate mockery --name "MetricSource|AnomalySource|ScheduledEventSource|AnnotationSource|ForecastSource" --srcpkg github.com/aevon-lab/anomaly-explorer/internal/focus --output ./focus --outpkg focusmocks --with-expecter
//go:generate mockery --name "MetricStore|ResultStore|AnnotationStore" --srcpkg github.com/aevon-lab/anomaly-explorer/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
